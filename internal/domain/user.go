// internal/domain/user.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User представляет модель пользователя в системе.
// Соответствует таблице 'users' в базе данных.
type User struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	UserName  string    `json:"userName" db:"username" gorm:"column:username"`
	Name      string    `json:"name" db:"name" gorm:"column:name"`
	Email     string    `json:"email" db:"email" gorm:"column:email"`
	Password  string    `json:"-" db:"password" gorm:"column:password"` // bcrypt-хеш, никогда не отдаётся клиенту
	Mobile    string    `json:"mobile" db:"mobile" gorm:"column:mobile"`
	CreatedAt time.Time `json:"-" db:"created_at" gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}
