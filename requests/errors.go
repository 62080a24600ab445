package requests

import (
	"errors"
	"strings"
)

// ErrInvalidForm is returned when the request body cannot be parsed as a form.
var ErrInvalidForm = errors.New("requests: invalid form body")

// ValidationError describes a single rejected form field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects field errors in form order.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Has reports whether field has an error.
func (e ValidationErrors) Has(field string) bool {
	return e.Get(field) != ""
}

// Get returns the first message for field, or "".
func (e ValidationErrors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func (e *ValidationErrors) add(field, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message})
}
