package auth

import (
	"net/mail"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

// Password length bounds in bytes; bcrypt ignores anything past 72.
const (
	minPasswordLen = 8
	maxPasswordLen = 72
	maxNameLen     = 100
	maxUsernameLen = 50
	maxEmailLen    = 254
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > maxUsernameLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, ValidatePassword("password", i.Password)...)

	if i.FirstName == "" {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "required"})
	} else if len(i.FirstName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "too long"})
	}

	if i.LastName == "" {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "required"})
	} else if len(i.LastName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ValidatePassword checks the length bounds of a new password.
func ValidatePassword(field, password string) []domain.FieldError {
	switch {
	case password == "":
		return []domain.FieldError{{Field: field, Message: "required"}}
	case len(password) < minPasswordLen:
		return []domain.FieldError{{Field: field, Message: "must be at least 8 characters"}}
	case len(password) > maxPasswordLen:
		return []domain.FieldError{{Field: field, Message: "must be at most 72 bytes"}}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > maxEmailLen {
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid format"}}
	}
	return nil
}
