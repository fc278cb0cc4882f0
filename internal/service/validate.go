package service

import (
	"errors"

	"blogapi/internal/domain"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// fieldErrors converts an ozzo validation result into the domain's
// field-level validation error so handlers can report which inputs were
// rejected.
func fieldErrors(err error) error {
	var ve validation.Errors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for name, fieldErr := range ve {
			fields[name] = fieldErr.Error()
		}
		return &domain.FieldErrors{Fields: fields}
	}
	return &domain.ValidationError{Message: err.Error()}
}
