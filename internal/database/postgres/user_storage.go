package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/RegisterApp/internal/database/storage"
	"github.com/GoArmGo/RegisterApp/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// GormUserStorage реализует интерфейс ports.UserStorage с использованием GORM
type GormUserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormDB открывает GORM поверх уже существующего пула sqlx,
// чтобы оба бэкенда делили одни и те же соединения
func NewGormDB(db *sqlx.DB) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db.DB}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации GORM: %w", err)
	}
	return gdb, nil
}

// NewGormUserStorage создает новый экземпляр GormUserStorage
func NewGormUserStorage(db *gorm.DB, logger *slog.Logger) *GormUserStorage {
	return &GormUserStorage{db: db, logger: logger}
}

// RegisterUser выполняет проверку дубликатов и вставку в транзакции GORM.
// GORM сам делает rollback, если функция транзакции вернула ошибку.
func (s *GormUserStorage) RegisterUser(ctx context.Context, user *domain.User) (uuid.UUID, error) {
	start := time.Now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []domain.User
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("username", "email").
			Where("lower(email) = lower(?) OR username = ?", user.Email, user.UserName).
			Find(&existing)
		if result.Error != nil {
			return fmt.Errorf("select existing users: %w", result.Error)
		}

		if conflict := domain.NewUserExistsError(existing, user); conflict != nil {
			return conflict
		}

		if user.ID == uuid.Nil {
			user.ID = uuid.New()
		}
		if user.CreatedAt.IsZero() {
			user.CreatedAt = time.Now().UTC()
		}

		if err := tx.Create(user).Error; err != nil {
			if conflict := storage.ConflictFromPQ(err); conflict != nil {
				return conflict
			}
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			s.logger.Warn("registration conflict", "username", user.UserName, "error", err)
		} else {
			s.logger.Error("failed to register user with GORM", "username", user.UserName, "error", err)
		}
		return uuid.Nil, err
	}

	s.logger.Info("user registered (GORM)",
		"user_id", user.ID,
		"username", user.UserName,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return user.ID, nil
}
