package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "employee-service/pkg/errors"
)

// New returns a validator configured for request structs.
func New() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Struct validates in and converts any failure into a *apperrors.ValidationError.
func Struct(v *validator.Validate, in any) error {
	if err := v.Struct(in); err != nil {
		return FormatError(err)
	}
	return nil
}

// FormatError converts validator.ValidationErrors into a human-readable
// ValidationError. Other errors are returned unchanged.
func FormatError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		case "min", "gte":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", e.Field(), e.Param()))
		case "max", "lte":
			messages = append(messages, fmt.Sprintf("%s must be at most %s", e.Field(), e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}

	field := ""
	if len(validationErrors) == 1 {
		field = validationErrors[0].Field()
	}
	return apperrors.NewValidationError(field, strings.Join(messages, ", "))
}
