package usecase

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/GoArmGo/RegisterApp/internal/domain"
	"github.com/GoArmGo/RegisterApp/internal/messaging/payloads"
	"github.com/google/uuid"
)

type fakeUserStorage struct {
	mu    sync.Mutex
	users []domain.User
	err   error
}

func (f *fakeUserStorage) RegisterUser(_ context.Context, user *domain.User) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return uuid.Nil, f.err
	}
	if conflict := domain.NewUserExistsError(f.users, user); conflict != nil {
		return uuid.Nil, conflict
	}
	user.ID = uuid.New()
	f.users = append(f.users, *user)
	return user.ID, nil
}

type fakePublisher struct {
	published []payloads.UserRegisteredPayload
	err       error
}

func (f *fakePublisher) PublishUserRegistered(_ context.Context, payload payloads.UserRegisteredPayload) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, payload)
	return nil
}

type fakeFileStorage struct {
	objects map[string][]byte
	types   map[string]string
	err     error
}

func (f *fakeFileStorage) UploadFile(_ context.Context, key string, reader io.Reader, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
		f.types = map[string]string{}
	}
	f.objects[key] = body
	f.types[key] = contentType
	return "http://minio.local/registrations/" + key, nil
}

var errBroker = errors.New("broker unavailable")
