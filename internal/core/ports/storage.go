package ports

import (
	"context"
	"io"

	"github.com/GoArmGo/RegisterApp/internal/domain"
	"github.com/google/uuid"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	// RegisterUser в одной транзакции проверяет занятость email/username и сохраняет пользователя.
	// При конфликте возвращает *domain.UserExistsError.
	RegisterUser(ctx context.Context, user *domain.User) (uuid.UUID, error)
}

// HealthChecker проверяет доступность базы данных
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// FileStorage определяет интерфейс для работы с файловым хранилищем (AWS S3, MinIO)
type FileStorage interface {
	// UploadFile загружает файл в хранилище и возвращает его URL.
	UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
}
