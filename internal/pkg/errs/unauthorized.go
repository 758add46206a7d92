package errs

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is the sentinel error for role or ownership mismatches.
var ErrUnauthorized = errors.New("unauthorized")

// UnauthorizedError indicates that the acting party may not perform the
// attempted operation on this aggregate.
type UnauthorizedError struct {
	Operation string
	Actor     string
	Cause     error
}

// NewUnauthorizedError creates an UnauthorizedError for the given operation and actor description.
func NewUnauthorizedError(operation, actor string) *UnauthorizedError {
	return &UnauthorizedError{Operation: operation, Actor: actor}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an underlying cause.
func NewUnauthorizedErrorWithCause(operation, actor string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Operation: operation, Actor: actor, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s may not %s (cause: %s)",
			ErrUnauthorized, e.Actor, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s may not %s", ErrUnauthorized, e.Actor, e.Operation))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
