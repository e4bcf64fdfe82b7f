package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the note is absent from the expected collection.
	ErrNotFound = errors.New("note not found")
	// ErrForbidden means the note exists but belongs to another user.
	ErrForbidden = errors.New("note belongs to another user")
	// ErrIndexOutOfRange is returned by checklist operations given a bad index.
	ErrIndexOutOfRange = errors.New("checklist index out of range")
)

// ValidationError reports bad input, e.g. a blank title or an unknown target
// user. It blocks the operation before any persistence call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError wraps a failure from the persistence gateway. The cause is
// kept opaque; retry policy belongs to the caller.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
