package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/RegisterApp/internal/core/ports"
	"github.com/GoArmGo/RegisterApp/internal/domain"
	"github.com/GoArmGo/RegisterApp/internal/messaging/payloads"
	"golang.org/x/crypto/bcrypt"
)

// registrationUseCase implements RegistrationUseCase
type registrationUseCase struct {
	userStorage ports.UserStorage
	publisher   ports.UserRegisteredPublisher
	bcryptCost  int
	logger      *slog.Logger
}

// NewRegistrationUseCase создает новый экземпляр RegistrationUseCase.
// publisher может быть nil, тогда события не публикуются.
func NewRegistrationUseCase(
	userStorage ports.UserStorage,
	publisher ports.UserRegisteredPublisher,
	bcryptCost int,
	logger *slog.Logger,
) RegistrationUseCase {
	return &registrationUseCase{
		userStorage: userStorage,
		publisher:   publisher,
		bcryptCost:  bcryptCost,
		logger:      logger,
	}
}

// Register валидирует входные данные, хеширует пароль и сохраняет пользователя в транзакции.
// После успешного коммита публикует событие user.registered.
func (uc *registrationUseCase) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if err := ValidateRegistration(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, &domain.ValidationError{Field: "password", Message: msgPasswordTooLong}
	}
	if err != nil {
		return nil, fmt.Errorf("usecase: hash password: %w", err)
	}

	user := &domain.User{
		UserName: in.UserName,
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Mobile:   in.Mobile,
	}

	id, err := uc.userStorage.RegisterUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("usecase: register user: %w", err)
	}
	user.ID = id
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	uc.publishRegistered(ctx, user)

	return user, nil
}

// publishRegistered отправляет событие в очередь. Ошибка только логируется:
// пользователь уже сохранён, и ответ клиенту от неё не зависит.
func (uc *registrationUseCase) publishRegistered(ctx context.Context, user *domain.User) {
	if uc.publisher == nil {
		return
	}

	payload := payloads.UserRegisteredPayload{
		ID:           user.ID,
		UserName:     user.UserName,
		Name:         user.Name,
		Email:        user.Email,
		Mobile:       user.Mobile,
		RegisteredAt: user.CreatedAt,
	}
	if err := uc.publisher.PublishUserRegistered(ctx, payload); err != nil {
		uc.logger.Error("failed to publish user registered event", "user_id", user.ID, "error", err)
	}
}
