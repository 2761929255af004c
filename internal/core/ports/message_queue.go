package ports

import (
	"context"

	"github.com/GoArmGo/RegisterApp/internal/messaging/payloads"
)

// UserRegisteredPublisher публикует события о регистрации пользователя
// используется usecase после успешного коммита
type UserRegisteredPublisher interface {
	PublishUserRegistered(ctx context.Context, payload payloads.UserRegisteredPayload) error
}

// UserRegisteredConsumer потребляет события о регистрации
// используется воркером архивации
type UserRegisteredConsumer interface {
	// StartConsumingUserRegistered начинает прослушивание очереди,
	// handler вызывается для каждого полученного сообщения
	StartConsumingUserRegistered(ctx context.Context, handler func(context.Context, payloads.UserRegisteredPayload) error) error
}
