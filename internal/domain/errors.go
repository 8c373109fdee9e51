package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Every *ValidationError matches it through errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrImmutableField is returned when a caller tries to change a field
	// that is fixed at construction. Every *ImmutableFieldError matches it.
	ErrImmutableField = errors.New("field is immutable")

	// ErrNilCatalog is returned when an entity is constructed without a catalog.
	ErrNilCatalog = errors.New("catalog cannot be nil")

	// ErrCatalogMismatch is returned when a contribution would join entities
	// that were registered with different catalogs.
	ErrCatalogMismatch = errors.New("entities belong to different catalogs")
)

// ValidationError describes a constraint violation on a single field.
type ValidationError struct {
	Entity  string // The entity type (e.g., "writer", "publication")
	Field   string // The offending field
	Message string // Human-readable description
	Err     error  // Field-specific sentinel
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %s: %s", e.Entity, e.Field, e.Message)
}

// Unwrap returns the field-specific sentinel to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a new ValidationError.
func NewValidationError(entity, field, message string, err error) *ValidationError {
	return &ValidationError{
		Entity:  entity,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// ImmutableFieldError is returned by setters of fields that are fixed once
// the entity exists.
type ImmutableFieldError struct {
	Entity string
	Field  string
}

// Error implements the error interface for ImmutableFieldError.
func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("cannot change %s %s after creation", e.Entity, e.Field)
}

// Is reports whether target is ErrImmutableField.
func (e *ImmutableFieldError) Is(target error) bool {
	return target == ErrImmutableField
}

// IsValidationError checks if the error is any kind of validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsImmutableFieldError checks if the error reports a write to an immutable field.
func IsImmutableFieldError(err error) bool {
	return errors.Is(err, ErrImmutableField)
}
