package client

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/RegisterApp/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Client представляет клиент для взаимодействия с PostgreSQL
type Client struct {
	DB     *sqlx.DB
	logger *slog.Logger
}

// NewClient инициализирует новое подключение к PostgreSQL и применяет миграции
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	start := time.Now()

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open PostgreSQL connection", "error", err)
		return nil, fmt.Errorf("ошибка открытия соединения с БД: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	logger.Info("PostgreSQL connection established successfully",
		"max_open_conns", cfg.DBMaxOpenConns,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	c := &Client{DB: db, logger: logger}

	if cfg.DBMigrate {
		if err := c.applyMigrations(cfg.DatabaseURL); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ошибка при применении миграций: %w", err)
		}
	}

	return c, nil
}

// NewClientFromDB оборачивает уже открытое соединение (используется в тестах)
func NewClientFromDB(db *sqlx.DB, logger *slog.Logger) *Client {
	return &Client{DB: db, logger: logger}
}

// applyMigrations применяет все доступные миграции к бд
func (c *Client) applyMigrations(databaseURL string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("не удалось открыть встроенные миграции: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр мигратора: %w", err)
	}
	defer m.Close()

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		c.logger.Info("migrations not required, database is up to date")
	case err != nil:
		return fmt.Errorf("ошибка выполнения миграций: %w", err)
	default:
		c.logger.Info("migrations applied successfully")
	}
	return nil
}

// Ping проверяет доступность базы данных
func (c *Client) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *Client) Close() error {
	start := time.Now()
	err := c.DB.Close()
	if err != nil {
		c.logger.Error("failed to close database connection", "error", err)
		return err
	}
	c.logger.Info("database connection closed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
