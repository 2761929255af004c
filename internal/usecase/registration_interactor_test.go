package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/GoArmGo/RegisterApp/internal/domain"
	"github.com/GoArmGo/RegisterApp/internal/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func newTestUseCase(storage *fakeUserStorage, publisher *fakePublisher) RegistrationUseCase {
	if publisher == nil {
		return NewRegistrationUseCase(storage, nil, bcrypt.MinCost, logger.Discard())
	}
	return NewRegistrationUseCase(storage, publisher, bcrypt.MinCost, logger.Discard())
}

func TestRegister_HashesPasswordAndStoresUser(t *testing.T) {
	storage := &fakeUserStorage{}
	uc := newTestUseCase(storage, nil)
	in := validInput()

	user, err := uc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == uuid.Nil {
		t.Fatal("expected id to be set")
	}
	if user.Password == in.Password {
		t.Fatal("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(storage.users) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(storage.users))
	}
	if storage.users[0].Password == in.Password {
		t.Fatal("storage received plain password")
	}
}

func TestRegister_ValidationErrorSkipsStorage(t *testing.T) {
	storage := &fakeUserStorage{}
	uc := newTestUseCase(storage, nil)
	in := validInput()
	in.Email = "kasun@yahoo.com"

	_, err := uc.Register(context.Background(), in)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(storage.users) != 0 {
		t.Fatal("storage must not be called for invalid input")
	}
}

func TestRegister_PasswordTooLong(t *testing.T) {
	uc := newTestUseCase(&fakeUserStorage{}, nil)
	in := validInput()
	in.Password = strings.Repeat("x", 73)

	_, err := uc.Register(context.Background(), in)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "password" {
		t.Fatalf("expected password validation error, got %v", err)
	}
}

func TestRegister_DuplicatePropagates(t *testing.T) {
	uc := newTestUseCase(&fakeUserStorage{}, nil)

	if _, err := uc.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := uc.Register(context.Background(), validInput())
	var existsErr *domain.UserExistsError
	if !errors.As(err, &existsErr) {
		t.Fatalf("expected UserExistsError, got %v", err)
	}
	if !existsErr.EmailTaken || !existsErr.UsernameTaken {
		t.Fatalf("expected both fields taken, got %+v", existsErr)
	}
}

func TestRegister_StorageFailure(t *testing.T) {
	dbErr := errors.New("connection refused")
	uc := newTestUseCase(&fakeUserStorage{err: dbErr}, nil)

	_, err := uc.Register(context.Background(), validInput())
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

func TestRegister_PublishesEvent(t *testing.T) {
	publisher := &fakePublisher{}
	uc := newTestUseCase(&fakeUserStorage{}, publisher)

	user, err := uc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(publisher.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(publisher.published))
	}

	ev := publisher.published[0]
	if ev.ID != user.ID || ev.UserName != user.UserName || ev.Email != user.Email || ev.Mobile != user.Mobile {
		t.Fatalf("event does not match user: %+v", ev)
	}
	if ev.RegisteredAt.IsZero() {
		t.Fatal("expected RegisteredAt to be set")
	}
}

func TestRegister_PublishFailureDoesNotFail(t *testing.T) {
	uc := newTestUseCase(&fakeUserStorage{}, &fakePublisher{err: errBroker})

	if _, err := uc.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("expected success despite publish failure, got %v", err)
	}
}

func TestRegister_NoEventOnFailure(t *testing.T) {
	publisher := &fakePublisher{}
	uc := newTestUseCase(&fakeUserStorage{err: errors.New("boom")}, publisher)

	if _, err := uc.Register(context.Background(), validInput()); err == nil {
		t.Fatal("expected error")
	}
	if len(publisher.published) != 0 {
		t.Fatal("no event expected when registration fails")
	}
}
