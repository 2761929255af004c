package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/RegisterApp/internal/core/ports"
	"github.com/GoArmGo/RegisterApp/internal/messaging/payloads"
)

type registrationArchiver struct {
	fileStorage ports.FileStorage
	logger      *slog.Logger
}

// NewRegistrationArchiver создает архиватор регистраций.
// Без fileStorage события только логируются.
func NewRegistrationArchiver(fileStorage ports.FileStorage, logger *slog.Logger) RegistrationArchiveUseCase {
	return &registrationArchiver{fileStorage: fileStorage, logger: logger}
}

// ArchiveRegistration сохраняет событие как registrations/<id>.json
func (a *registrationArchiver) ArchiveRegistration(ctx context.Context, payload payloads.UserRegisteredPayload) error {
	if a.fileStorage == nil {
		a.logger.Info("registration received (archive disabled)", "user_id", payload.ID, "username", payload.UserName)
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("usecase: marshal registration %s: %w", payload.ID, err)
	}

	key := ArchiveKey(payload)
	url, err := a.fileStorage.UploadFile(ctx, key, bytes.NewReader(body), "application/json")
	if err != nil {
		return fmt.Errorf("usecase: archive registration %s: %w", payload.ID, err)
	}

	a.logger.Info("registration archived", "user_id", payload.ID, "url", url)
	return nil
}

// ArchiveKey возвращает ключ объекта для события регистрации
func ArchiveKey(payload payloads.UserRegisteredPayload) string {
	return fmt.Sprintf("registrations/%s.json", payload.ID)
}
