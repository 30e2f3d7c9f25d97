package user

import (
	"strings"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

const (
	maxUsernameLen = 50
	maxTextLen     = 100
	maxAge         = 150
)

// UpdateProfileInput holds a sparse profile update. Nil, blank and zero
// values are ignored.
type UpdateProfileInput struct {
	Username  *string
	FirstName *string
	LastName  *string
	Age       *int
	Gender    *string
	Country   *string
	State     *string
	Pincode   *int
}

// Validate validates the fields that will be applied.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Username != nil && len(*i.Username) > maxUsernameLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	for _, f := range []struct {
		name string
		val  *string
	}{
		{"firstName", i.FirstName},
		{"lastName", i.LastName},
		{"gender", i.Gender},
		{"country", i.Country},
		{"state", i.State},
	} {
		if f.val != nil && len(*f.val) > maxTextLen {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "too long"})
		}
	}

	if i.Age != nil && (*i.Age < 0 || *i.Age > maxAge) {
		errs = append(errs, domain.FieldError{Field: "age", Message: "must be between 0 and 150"})
	}
	if i.Pincode != nil && *i.Pincode < 0 {
		errs = append(errs, domain.FieldError{Field: "pincode", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// patch drops absent, blank and zero fields and trims the rest.
func (i UpdateProfileInput) patch() domain.ProfilePatch {
	return domain.ProfilePatch{
		Username:  nonBlank(i.Username),
		FirstName: nonBlank(i.FirstName),
		LastName:  nonBlank(i.LastName),
		Age:       nonZero(i.Age),
		Gender:    nonBlank(i.Gender),
		Country:   nonBlank(i.Country),
		State:     nonBlank(i.State),
		Pincode:   nonZero(i.Pincode),
	}
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func nonZero(n *int) *int {
	if n == nil || *n == 0 {
		return nil
	}
	return n
}
