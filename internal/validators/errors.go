package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-posts/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation is matched by every [*ValidationError].
	ErrValidation = errors.New("validation failed")
)

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewFieldError builds a [*ValidationError] for a single field.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: []models.FieldError{{Field: field, Message: message}}}
}
