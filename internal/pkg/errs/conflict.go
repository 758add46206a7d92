package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel error for detected concurrent writes.
var ErrConflict = errors.New("concurrent modification detected")

// ConflictError indicates that the aggregate changed between read and write.
// The caller must re-read the aggregate and retry the operation.
type ConflictError struct {
	Entity  string
	ID      any
	Version int
}

// NewConflictError creates a ConflictError for the given entity and the version the writer held.
func NewConflictError(entity string, id any, version int) *ConflictError {
	return &ConflictError{Entity: entity, ID: id, Version: version}
}

func (e *ConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s at version %d", ErrConflict, e.Entity, e.ID, e.Version))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
