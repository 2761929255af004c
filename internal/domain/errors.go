package domain

import (
	"errors"
	"strings"
)

var (
	// ErrValidation — общий признак ошибки валидации входных данных.
	ErrValidation = errors.New("validation failed")
	// ErrUserExists — пользователь с таким email или username уже существует.
	ErrUserExists = errors.New("user already exists")
)

// ValidationError описывает поле, не прошедшее проверку, и сообщение для клиента.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// UserExistsError возвращается, когда email и/или username уже заняты.
// Если оба флага false, конфликт известен, но поле определить не удалось.
type UserExistsError struct {
	EmailTaken    bool
	UsernameTaken bool
}

func (e *UserExistsError) Error() string {
	switch {
	case e.EmailTaken && e.UsernameTaken:
		return "Both email and username are already registered"
	case e.EmailTaken:
		return "Email address is already registered"
	case e.UsernameTaken:
		return "Username is already taken"
	default:
		return "User with this email or username already exists"
	}
}

func (e *UserExistsError) Is(target error) bool {
	return target == ErrUserExists
}

// NewUserExistsError определяет, какое из полей кандидата совпало с уже существующими записями.
// Email сравнивается без учёта регистра, username — точно. Возвращает nil, если совпадений нет.
func NewUserExistsError(existing []User, candidate *User) *UserExistsError {
	if len(existing) == 0 {
		return nil
	}

	conflict := &UserExistsError{}
	for _, u := range existing {
		if strings.EqualFold(u.Email, candidate.Email) {
			conflict.EmailTaken = true
		}
		if u.UserName == candidate.UserName {
			conflict.UsernameTaken = true
		}
	}
	return conflict
}
