package payloads

import (
	"time"

	"github.com/google/uuid"
)

// UserRegisteredPayload представляет событие об успешной регистрации пользователя
// через RabbitMQ. Пароль в событие не попадает.
type UserRegisteredPayload struct {
	ID           uuid.UUID `json:"id"`
	UserName     string    `json:"userName"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	RegisteredAt time.Time `json:"registeredAt"`
}
