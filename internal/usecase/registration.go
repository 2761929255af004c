package usecase

import (
	"context"

	"github.com/GoArmGo/RegisterApp/internal/domain"
	"github.com/GoArmGo/RegisterApp/internal/messaging/payloads"
)

// RegisterInput — данные, присланные клиентом при регистрации
type RegisterInput struct {
	UserName string
	Name     string
	Email    string
	Password string
	Mobile   string
}

// RegistrationUseCase определяет интерфейс бизнес-логики регистрации пользователей
type RegistrationUseCase interface {
	// Register валидирует данные, хеширует пароль и сохраняет пользователя.
	// Ошибки валидации — *domain.ValidationError, дубликаты — *domain.UserExistsError.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
}

// RegistrationArchiveUseCase сохраняет копию события о регистрации во внешнее хранилище
type RegistrationArchiveUseCase interface {
	ArchiveRegistration(ctx context.Context, payload payloads.UserRegisteredPayload) error
}
