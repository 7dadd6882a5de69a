package store

import (
	"errors"
	"fmt"
)

// Sentinels shared by every store implementation. Callers match them with
// errors.Is; implementations wrap them with detail.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrDuplicate     = errors.New("entity already exists")
	ErrInvalidEntity = errors.New("invalid entity")
	ErrInternal      = errors.New("internal store error")

	// ErrLearnerNotFound is returned when no learner matches the lookup.
	ErrLearnerNotFound = fmt.Errorf("%w: learner", ErrNotFound)

	// ErrEmailExists is returned when a learner already uses the email.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError reports whether err wraps ErrNotFound.
func IsNotFoundError(err error) bool { return errors.Is(err, ErrNotFound) }

// IsDuplicateError reports whether err wraps ErrDuplicate.
func IsDuplicateError(err error) bool { return errors.Is(err, ErrDuplicate) }

// IsInternalError reports whether err wraps ErrInternal.
func IsInternalError(err error) bool { return errors.Is(err, ErrInternal) }

// StoreError records which entity and operation a persistence failure
// came from.
type StoreError struct {
	Entity    string // "learner", "progress"
	Operation string // "create", "add", "list", ...
	Message   string
	Err       error
}

func (e *StoreError) Error() string {
	msg := fmt.Sprintf("store: %s %s: %s", e.Entity, e.Operation, e.Message)
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError returns a StoreError for entity and operation wrapping err.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{Entity: entity, Operation: operation, Message: message, Err: err}
}
