package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/GoArmGo/RegisterApp/internal/logger"
	"github.com/GoArmGo/RegisterApp/internal/messaging/payloads"
	"github.com/google/uuid"
)

func TestArchiveRegistration_UploadsJSON(t *testing.T) {
	files := &fakeFileStorage{}
	archiver := NewRegistrationArchiver(files, logger.Discard())

	payload := payloads.UserRegisteredPayload{
		ID:           uuid.New(),
		UserName:     "kasun",
		Name:         "Kasun Perera",
		Email:        "kasun@gmail.com",
		Mobile:       "0771234567",
		RegisteredAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	if err := archiver.ArchiveRegistration(context.Background(), payload); err != nil {
		t.Fatalf("ArchiveRegistration: %v", err)
	}

	key := "registrations/" + payload.ID.String() + ".json"
	body, ok := files.objects[key]
	if !ok {
		t.Fatalf("expected object %s to be uploaded", key)
	}
	if files.types[key] != "application/json" {
		t.Fatalf("expected application/json, got %s", files.types[key])
	}

	var got payloads.UserRegisteredPayload
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("archived body is not JSON: %v", err)
	}
	if got.ID != payload.ID || got.Email != payload.Email {
		t.Fatalf("archived payload mismatch: %+v", got)
	}
}

func TestArchiveRegistration_UploadError(t *testing.T) {
	archiver := NewRegistrationArchiver(&fakeFileStorage{err: errors.New("bucket missing")}, logger.Discard())

	if err := archiver.ArchiveRegistration(context.Background(), payloads.UserRegisteredPayload{ID: uuid.New()}); err == nil {
		t.Fatal("expected error")
	}
}

func TestArchiveRegistration_DisabledStorage(t *testing.T) {
	archiver := NewRegistrationArchiver(nil, logger.Discard())

	if err := archiver.ArchiveRegistration(context.Background(), payloads.UserRegisteredPayload{ID: uuid.New()}); err != nil {
		t.Fatalf("expected nil with archive disabled, got %v", err)
	}
}
