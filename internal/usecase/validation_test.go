package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/GoArmGo/RegisterApp/internal/domain"
)

func validInput() RegisterInput {
	return RegisterInput{
		UserName: "kasun",
		Name:     "Kasun Perera",
		Email:    "kasun.perera@gmail.com",
		Password: "s3cret-pass",
		Mobile:   "0771234567",
	}
}

func TestIsValidGmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"kasun@gmail.com", true},
		{"kasun.perera@gmail.com", true},
		{"k@gmail.com", true},
		{"1kasun@gmail.com", true},
		{"kasun_99+news@gmail.com", true},
		{"kasun%tag-x@gmail.com", true},
		{"k" + strings.Repeat("a", 63) + "@gmail.com", true},
		{"k" + strings.Repeat("a", 64) + "@gmail.com", false},
		{"123456@gmail.com", false},
		{"0@gmail.com", false},
		{".kasun@gmail.com", false},
		{"_kasun@gmail.com", false},
		{"kasun@yahoo.com", false},
		{"kasun@gmail.co", false},
		{"kasun@gmail.com.lk", false},
		{"kasun@GMAIL.COM", false},
		{"kasun@googlemail.com", false},
		{"kasun perera@gmail.com", false},
		{"@gmail.com", false},
		{"kasun", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidGmail(tt.email); got != tt.want {
				t.Fatalf("IsValidGmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidSriLankanMobile(t *testing.T) {
	tests := []struct {
		mobile string
		want   bool
	}{
		{"0712345678", true},
		{"+94712345678", true},
		{"712345678", true},
		{"0702345678", true},
		{"0722345678", true},
		{"0742345678", true},
		{"0752345678", true},
		{"0762345678", true},
		{"0772345678", true},
		{"0782345678", true},
		{"0732345678", false},
		{"0792345678", false},
		{"07,2345678", false},
		{"0812345678", false},
		{"071234567", false},
		{"07123456789", false},
		{"94712345678", false},
		{"+940712345678", false},
		{"00712345678", false},
		{"+94 712345678", false},
		{"071-234-5678", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mobile, func(t *testing.T) {
			if got := IsValidSriLankanMobile(tt.mobile); got != tt.want {
				t.Fatalf("IsValidSriLankanMobile(%q) = %v, want %v", tt.mobile, got, tt.want)
			}
		})
	}
}

func TestValidateRegistration_MissingFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*RegisterInput)
	}{
		{"userName", func(in *RegisterInput) { in.UserName = "" }},
		{"name", func(in *RegisterInput) { in.Name = "" }},
		{"email", func(in *RegisterInput) { in.Email = "" }},
		{"password", func(in *RegisterInput) { in.Password = "" }},
		{"mobile", func(in *RegisterInput) { in.Mobile = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := ValidateRegistration(in)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, verr.Field)
			}
			if verr.Message != msgMissingField {
				t.Fatalf("expected missing field message, got %q", verr.Message)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatal("expected error to match ErrValidation")
			}
		})
	}
}

func TestValidateRegistration_Order(t *testing.T) {
	// присутствие проверяется раньше формата email, email раньше номера
	in := validInput()
	in.Email = "bad"
	in.Mobile = ""
	if err := ValidateRegistration(in); err.Error() != msgMissingField {
		t.Fatalf("expected missing field first, got %q", err)
	}

	in = validInput()
	in.Email = "bad"
	in.Mobile = "123"
	if err := ValidateRegistration(in); err.Error() != msgInvalidEmail {
		t.Fatalf("expected invalid email before invalid mobile, got %q", err)
	}

	in = validInput()
	in.Mobile = "123"
	if err := ValidateRegistration(in); err.Error() != msgInvalidMobile {
		t.Fatalf("expected invalid mobile, got %q", err)
	}

	if err := ValidateRegistration(validInput()); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}
