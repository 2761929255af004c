package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	StorageBackendSQLX = "sqlx"
	StorageBackendGORM = "gorm"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort     string        `env:"PORT"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	DatabaseURL       string        `env:"DATABASE_URL,required"`
	StorageBackend    string        `env:"STORAGE_BACKEND" envDefault:"sqlx"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	DBMigrate         bool          `env:"DB_MIGRATE" envDefault:"true"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// Настройки для MinIO (архив регистраций, нужен только воркеру)
	MinioEndpoint        string `env:"MINIO_ENDPOINT"`
	MinioAccessKeyID     string `env:"MINIO_ACCESS_KEY_ID"`
	MinioSecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY"`
	MinioUseSSL          bool   `env:"MINIO_USE_SSL"`
	MinioBucketName      string `env:"MINIO_BUCKET_NAME" envDefault:"registrations"`
	MinioRegion          string `env:"MINIO_REGION" envDefault:"us-east-1"`

	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"user_registered_queue"`
	}
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL не может быть пустым")
	}
	switch c.StorageBackend {
	case StorageBackendSQLX, StorageBackendGORM:
	default:
		return fmt.Errorf("неизвестный STORAGE_BACKEND: %q (используйте %q или %q)", c.StorageBackend, StorageBackendSQLX, StorageBackendGORM)
	}
	// bcrypt.MinCost = 4, bcrypt.MaxCost = 31
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST должен быть в диапазоне 4..31, получено %d", c.BcryptCost)
	}
	return nil
}

// RabbitMQEnabled сообщает, настроена ли публикация событий.
func (c *Config) RabbitMQEnabled() bool {
	return c.RabbitMQ.RabbitMQURL != ""
}

// MinioEnabled сообщает, настроен ли архив регистраций.
func (c *Config) MinioEnabled() bool {
	return c.MinioEndpoint != "" && c.MinioAccessKeyID != "" && c.MinioSecretAccessKey != ""
}
