package usecase

import (
	"regexp"

	"github.com/GoArmGo/RegisterApp/internal/domain"
)

const (
	msgMissingField  = "Please provide userName, name, email, password and mobile"
	msgInvalidEmail  = "Please provide a valid Gmail address"
	msgInvalidMobile = "Please provide a valid Sri Lankan mobile number"
	// bcrypt принимает не более 72 байт
	msgPasswordTooLong = "Password must not exceed 72 bytes"
)

var (
	// первый символ буква или цифра, затем до 63 символов из [A-Za-z0-9._%+-], домен строго gmail.com
	gmailPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._%+-]{0,63}@gmail\.com$`)
	// локальная часть только из цифр запрещена
	numericGmailPattern = regexp.MustCompile(`^[0-9]+@gmail\.com$`)
	// необязательный префикс 0 или +94, затем 7, код оператора и ещё 7 цифр
	mobilePattern = regexp.MustCompile(`^(?:0|\+94)?7[0124-8][0-9]{7}$`)
)

// ValidateRegistration проверяет поля в порядке: наличие, email, мобильный номер.
// Возвращает первую найденную ошибку.
func ValidateRegistration(in RegisterInput) error {
	required := []struct {
		field string
		value string
	}{
		{"userName", in.UserName},
		{"name", in.Name},
		{"email", in.Email},
		{"password", in.Password},
		{"mobile", in.Mobile},
	}
	for _, r := range required {
		if r.value == "" {
			return &domain.ValidationError{Field: r.field, Message: msgMissingField}
		}
	}

	if !IsValidGmail(in.Email) {
		return &domain.ValidationError{Field: "email", Message: msgInvalidEmail}
	}

	if !IsValidSriLankanMobile(in.Mobile) {
		return &domain.ValidationError{Field: "mobile", Message: msgInvalidMobile}
	}

	return nil
}

// IsValidGmail сообщает, является ли email допустимым адресом gmail.com
func IsValidGmail(email string) bool {
	return gmailPattern.MatchString(email) && !numericGmailPattern.MatchString(email)
}

// IsValidSriLankanMobile сообщает, соответствует ли номер формату мобильных номеров Шри-Ланки
func IsValidSriLankanMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}
