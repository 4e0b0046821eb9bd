package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// contactEmailRegex is a deliberately permissive address check: anything of
// the shape local@domain.tld with no whitespace. Favors false negatives over
// rejecting a deliverable address.
var contactEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("contact_email", validateContactEmail)
}

// IsValidEmail checks whether the address matches the permissive
// local@domain.tld shape used for contact submissions.
func IsValidEmail(email string) bool {
	return contactEmailRegex.MatchString(email)
}

func validateContactEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}
