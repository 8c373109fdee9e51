package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrDuplicate is returned when an entity is registered a second time.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when a nil or unidentified entity is
	// offered for registration.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "duplicate" errors

	// ErrWriterExists indicates that the writer is already registered.
	ErrWriterExists = fmt.Errorf("%w: writer", ErrDuplicate)

	// ErrPublicationExists indicates that the publication is already registered.
	ErrPublicationExists = fmt.Errorf("%w: publication", ErrDuplicate)

	// ErrContributionExists indicates that the contribution is already registered.
	ErrContributionExists = fmt.Errorf("%w: contribution", ErrDuplicate)
)

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "writer", "contribution")
	Operation string // The operation that failed (e.g., "register")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
