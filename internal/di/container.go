package di

import (
	"context"
	"io"

	"github.com/GoArmGo/RegisterApp/internal/adapter/storage/minio"
	"github.com/GoArmGo/RegisterApp/internal/app"
	"github.com/GoArmGo/RegisterApp/internal/config"
	"github.com/GoArmGo/RegisterApp/internal/core/ports"
	"github.com/GoArmGo/RegisterApp/internal/database/client"
	"github.com/GoArmGo/RegisterApp/internal/database/postgres"
	"github.com/GoArmGo/RegisterApp/internal/database/storage"
	"github.com/GoArmGo/RegisterApp/internal/logger"
	"github.com/GoArmGo/RegisterApp/internal/rabbitmq"
	"github.com/GoArmGo/RegisterApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp(ctx context.Context, mode string) (_ *app.App, err error) {
	var closers []io.Closer
	defer func() {
		if err == nil {
			return
		}
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i].Close()
		}
	}()

	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{Level: cfg.LogLevel, Format: cfg.LogFormat})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. PostgreSQL клиент + миграции
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}
	closers = append(closers, dbClient)

	// 3. Хранилище пользователей
	var userStorage ports.UserStorage
	switch cfg.StorageBackend {
	case config.StorageBackendGORM:
		gormDB, err := postgres.NewGormDB(dbClient.DB)
		if err != nil {
			return nil, err
		}
		userStorage = postgres.NewGormUserStorage(gormDB, slogger)
	default:
		userStorage = storage.NewUserStorage(dbClient.DB, slogger)
	}
	slogger.Info("user storage initialized", "backend", cfg.StorageBackend)

	// 4. RabbitMQ (необязателен для сервера)
	var publisher ports.UserRegisteredPublisher
	var consumer ports.UserRegisteredConsumer
	if cfg.RabbitMQEnabled() {
		mqClient, err := rabbitmq.NewClient(cfg, slogger)
		if err != nil {
			return nil, err
		}
		closers = append(closers, mqClient)
		publisher = mqClient
		consumer = mqClient
	} else {
		slogger.Warn("RABBITMQ_URL is not set, user registered events are disabled")
	}

	// 5. Архив регистраций в MinIO нужен только воркеру
	var fileStorage ports.FileStorage
	if mode == app.ModeWorker && cfg.MinioEnabled() {
		minioClient, err := minio.NewMinioClient(ctx, cfg, slogger)
		if err != nil {
			return nil, err
		}
		fileStorage = minioClient
	}

	// 6. Бизнес-логика
	registrationUseCase := usecase.NewRegistrationUseCase(userStorage, publisher, cfg.BcryptCost, slogger)
	archiveUseCase := usecase.NewRegistrationArchiver(fileStorage, slogger)

	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		registrationUseCase,
		archiveUseCase,
		consumer,
		closers...,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
