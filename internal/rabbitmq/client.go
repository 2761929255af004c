package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/RegisterApp/internal/config"
	"github.com/GoArmGo/RegisterApp/internal/messaging/payloads"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Client представляет собой клиент RabbitMQ
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
	logger  *slog.Logger
}

// NewClient создает и инициализирует новый клиент RabbitMQ
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.RabbitMQ.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// Идемпотентная операция: очередь будет создана, если ее нет
	q, err := ch.QueueDeclare(
		cfg.RabbitMQ.RabbitMQQueueName, // name
		true,                           // durable
		false,                          // delete when unused
		false,                          // exclusive
		false,                          // no-wait
		nil,                            // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare a queue: %w", err)
	}

	logger.Info("RabbitMQ queue declared", "queue", q.Name, "messages", q.Messages)

	return &Client{conn: conn, channel: ch, queue: q, logger: logger}, nil
}

// Close закрывает соединение и канал RabbitMQ
func (c *Client) Close() error {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Error("error closing RabbitMQ channel", "error", err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("close RabbitMQ connection: %w", err)
		}
	}
	c.logger.Info("RabbitMQ connection closed")
	return nil
}

// PublishUserRegistered публикует событие о регистрации в очередь.
// Реализует ports.UserRegisteredPublisher.
func (c *Client) PublishUserRegistered(ctx context.Context, payload payloads.UserRegisteredPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload to JSON: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		publishCtx,
		"",           // exchange
		c.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    payload.ID.String(),
			Timestamp:    payload.RegisteredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish a message: %w", err)
	}
	c.logger.Debug("user registered event published", "queue", c.queue.Name, "user_id", payload.ID)
	return nil
}

// StartConsumingUserRegistered начинает потребление сообщений из очереди.
// Реализует ports.UserRegisteredConsumer.
func (c *Client) StartConsumingUserRegistered(ctx context.Context, handler func(context.Context, payloads.UserRegisteredPayload) error) error {
	msgs, err := c.channel.Consume(
		c.queue.Name, // queue
		"",           // consumer
		false,        // auto-ack (подтверждаем вручную)
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	c.logger.Info("consumer registered", "queue", c.queue.Name)

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					c.logger.Info("RabbitMQ delivery channel closed, stopping consumer")
					return
				}
				c.handleDelivery(ctx, msg, handler)
			case <-ctx.Done():
				c.logger.Info("context cancelled, stopping RabbitMQ consumer")
				return
			}
		}
	}()

	return nil
}

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func (c *Client) handleDelivery(ctx context.Context, msg amqp.Delivery, handler func(context.Context, payloads.UserRegisteredPayload) error) {
	processDelivery(ctx, c.logger, msg.Body, &msg, handler)
}

// processDelivery декодирует сообщение, вызывает обработчик и подтверждает доставку.
// Битое сообщение отклоняется без возврата в очередь, ошибка обработки возвращает его в очередь.
func processDelivery(ctx context.Context, logger *slog.Logger, body []byte, ack acknowledger, handler func(context.Context, payloads.UserRegisteredPayload) error) {
	var payload payloads.UserRegisteredPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Error("error unmarshalling message", "error", err, "body", string(body))
		if err := ack.Nack(false, false); err != nil {
			logger.Error("error NACKing message after unmarshal failure", "error", err)
		}
		return
	}

	if err := handler(ctx, payload); err != nil {
		logger.Error("error processing message", "user_id", payload.ID, "error", err)
		if err := ack.Nack(false, true); err != nil {
			logger.Error("error NACKing message after processing failure", "error", err)
		}
		return
	}

	if err := ack.Ack(false); err != nil {
		logger.Error("error ACKing message", "error", err)
		return
	}
	logger.Debug("message processed and ACKed", "user_id", payload.ID)
}
