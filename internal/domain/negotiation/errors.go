package negotiation

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a negotiation id resolves to no row.
var ErrNotFound = errors.New("negotiation not found")

// ConflictError signals a state or version mismatch: either the in-memory
// snapshot disagrees with the state object's own status, or an
// optimistic-lock write affected zero rows. Callers recover by re-fetching
// the snapshot and retrying.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// ValidationError signals input or a precondition violating a business
// rule. The offending operation performs no write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
