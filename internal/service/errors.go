package service

import (
	"errors"
	"fmt"
)

// Sentinels for matching error kinds with errors.Is.
var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("not found")
	ErrAlreadyInState = errors.New("already in state")
)

// ValidationError reports malformed or out-of-domain input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a task id absent from the store.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// AlreadyInStateError reports a mark request for the state a task already has.
type AlreadyInStateError struct {
	ID        int
	Completed bool
}

func (e *AlreadyInStateError) Error() string {
	if e.Completed {
		return fmt.Sprintf("task %d is already complete", e.ID)
	}
	return fmt.Sprintf("task %d is already incomplete", e.ID)
}

func (e *AlreadyInStateError) Is(target error) bool { return target == ErrAlreadyInState }

// ValidateID rejects non-positive task ids.
func ValidateID(id int) error {
	if id <= 0 {
		return &ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	return nil
}
