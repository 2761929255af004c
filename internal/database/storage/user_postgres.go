package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/RegisterApp/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	selectConflictsQuery = `SELECT username, email FROM users WHERE lower(email) = lower($1) OR username = $2 FOR UPDATE`

	insertUserQuery = `
	INSERT INTO users (id, username, name, email, password, mobile, created_at)
	VALUES (:id, :username, :name, :email, :password, :mobile, :created_at)
	`

	// SQLSTATE unique_violation
	uniqueViolationCode = "23505"

	emailConstraint      = "users_email_key"
	emailLowerConstraint = "users_email_lower_key"
	usernameConstraint   = "users_username_key"
)

// UserStorage реализует интерфейс ports.UserStorage поверх sqlx
type UserStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *sqlx.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// RegisterUser проверяет занятость email/username и вставляет пользователя в одной транзакции.
// При любой ошибке транзакция откатывается, соединение возвращается в пул.
func (s *UserStorage) RegisterUser(ctx context.Context, user *domain.User) (id uuid.UUID, err error) {
	start := time.Now()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", "error", err)
		return uuid.Nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			s.logger.Error("failed to rollback transaction", "error", rbErr)
		}
	}()

	var existing []domain.User
	if err = tx.SelectContext(ctx, &existing, selectConflictsQuery, user.Email, user.UserName); err != nil {
		s.logger.Error("failed to check existing users", "error", err)
		return uuid.Nil, fmt.Errorf("select existing users: %w", err)
	}

	if conflict := domain.NewUserExistsError(existing, user); conflict != nil {
		s.logger.Warn("registration conflict",
			"username", user.UserName,
			"email_taken", conflict.EmailTaken,
			"username_taken", conflict.UsernameTaken,
		)
		err = conflict
		return uuid.Nil, err
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	if _, err = tx.NamedExecContext(ctx, insertUserQuery, user); err != nil {
		if conflict := ConflictFromPQ(err); conflict != nil {
			s.logger.Warn("unique constraint violated on insert", "username", user.UserName, "error", err)
			err = conflict
			return uuid.Nil, err
		}
		s.logger.Error("failed to insert user", "username", user.UserName, "error", err)
		return uuid.Nil, fmt.Errorf("insert user: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", "error", err)
		return uuid.Nil, fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"username", user.UserName,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return user.ID, nil
}

// ConflictFromPQ превращает нарушение уникального ограничения в *domain.UserExistsError.
func ConflictFromPQ(err error) *domain.UserExistsError {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolationCode {
		return nil
	}

	switch pqErr.Constraint {
	case emailConstraint, emailLowerConstraint:
		return &domain.UserExistsError{EmailTaken: true}
	case usernameConstraint:
		return &domain.UserExistsError{UsernameTaken: true}
	default:
		return &domain.UserExistsError{}
	}
}
