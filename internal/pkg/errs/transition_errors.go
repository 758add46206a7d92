package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is the sentinel error for state machine transitions
	// that are not listed in the entity's transition table.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrAlreadyProcessed is the sentinel error for re-applying a transition
	// to an entity that has already absorbed it.
	ErrAlreadyProcessed = errors.New("already processed")
)

// InvalidTransitionError indicates that the target state is not reachable
// from the entity's current state.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

// NewInvalidTransitionError creates an InvalidTransitionError describing the rejected transition.
func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(entity, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s cannot go from %s to %s (cause: %s)",
			ErrInvalidTransition, e.Entity, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s cannot go from %s to %s",
		ErrInvalidTransition, e.Entity, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AlreadyProcessedError indicates an idempotency violation: the entity is
// already in (or past) the state the operation tried to move it to.
type AlreadyProcessedError struct {
	Entity string
	ID     any
	Status string
}

// NewAlreadyProcessedError creates an AlreadyProcessedError for the given entity and its current status.
func NewAlreadyProcessedError(entity string, id any, status string) *AlreadyProcessedError {
	return &AlreadyProcessedError{Entity: entity, ID: id, Status: status}
}

func (e *AlreadyProcessedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s is %s", ErrAlreadyProcessed, e.Entity, e.ID, e.Status))
}

func (e *AlreadyProcessedError) Unwrap() error {
	return ErrAlreadyProcessed
}
