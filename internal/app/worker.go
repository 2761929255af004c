package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/GoArmGo/RegisterApp/internal/messaging/payloads"
)

// runWorker запускает потребителя RabbitMQ и архивирует события о регистрации
func (a *App) runWorker(ctx context.Context) error {
	if a.registeredConsumer == nil {
		return errors.New("режим worker требует RABBITMQ_URL")
	}

	a.logger.Info("worker started, waiting for user registered events")

	messageHandler := func(ctx context.Context, payload payloads.UserRegisteredPayload) error {
		return a.archiveUseCase.ArchiveRegistration(ctx, payload)
	}

	if err := a.registeredConsumer.StartConsumingUserRegistered(ctx, messageHandler); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}

	<-ctx.Done()
	a.logger.Info("worker stopped")
	return nil
}
