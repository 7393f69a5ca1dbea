package validator

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("strongpassword", strongPassword)
}

// Validate struct fields; returns field->tag map on failure, nil otherwise.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// strongPassword requires 8-64 chars with at least one lowercase, one
// uppercase and one digit.
func strongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 || len(password) > 64 {
		return false
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}

// IsStrongPassword checks the same policy outside of struct binding.
func IsStrongPassword(password string) bool {
	type wrapper struct {
		Password string `validate:"strongpassword"`
	}
	return Validate(wrapper{Password: password}) == nil
}
