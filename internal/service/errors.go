package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/masthead/internal/domain"
)

// Common service errors - sentinel errors used across service implementations.
var (
	// ErrNilCatalog is returned when a service is built without a catalog.
	ErrNilCatalog = errors.New("catalog cannot be nil")

	// ErrInvalidThreshold is returned when the frequent contributor threshold is negative.
	ErrInvalidThreshold = errors.New("frequent contributor threshold cannot be negative")
)

// CatalogServiceError wraps errors from the catalog service with context.
type CatalogServiceError struct {
	// Operation is the operation that failed (e.g., "create_writer", "contribute")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for CatalogServiceError.
func (e *CatalogServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("catalog service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CatalogServiceError) Unwrap() error {
	return e.Err
}

// NewCatalogServiceError creates a new CatalogServiceError.
// Domain validation and immutability errors are returned directly without wrapping.
func NewCatalogServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if domain.IsValidationError(err) || domain.IsImmutableFieldError(err) {
		return err
	}

	return &CatalogServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
