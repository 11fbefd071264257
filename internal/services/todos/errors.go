package todosvc

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no todo carries the requested id.
var ErrNotFound = errors.New("todo not found")

// ValidationError reports input the service refuses to act on, such as an
// unparsable list filter.
type ValidationError struct {
	// Field names the offending input.
	Field string

	// Msg describes why it was rejected.
	Msg string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
// Uses errors.As to handle wrapped errors.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
