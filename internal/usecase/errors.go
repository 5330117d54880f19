package usecase

import (
	"errors"
	"fmt"
)

// ErrNoActiveDraft means a wizard step was invoked with no live draft for
// the session token (never started, expired, or already committed). Not
// recoverable in place; the caller must start over.
var ErrNoActiveDraft = errors.New("no active checkout draft")

// NotFoundError reports an unknown showtime/snack/order/person.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ValidationError reports malformed or inconsistent step input. The step
// re-renders with the draft unchanged; the caller retries.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
