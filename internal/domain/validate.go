package domain

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Field constraints. String lengths are counted in runes.
const (
	writerNameTag          = "required"
	publicationNameTag     = "min=2,max=16"
	publicationCategoryTag = "required"
	contributionTitleTag   = "min=5,max=50"
)

// Global validator instance for reuse
var validate = validator.New()

// checkField validates value against tag and converts a failure into a
// ValidationError carrying the given sentinel.
func checkField(entity, field, value, tag, message string, sentinel error) error {
	if err := validate.Var(value, tag); err != nil {
		return NewValidationError(entity, field, message, sentinel)
	}
	return nil
}

// joinErrors returns nil, the only error, or all errors joined.
func joinErrors(errs ...error) error {
	var failed []error
	for _, err := range errs {
		if err != nil {
			failed = append(failed, err)
		}
	}

	switch len(failed) {
	case 0:
		return nil
	case 1:
		return failed[0]
	default:
		return errors.Join(failed...)
	}
}

// distinct returns items with duplicates removed, keeping first-seen order.
func distinct[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
