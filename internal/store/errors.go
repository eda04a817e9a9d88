package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested record does not exist in the
	// store. This is the generic form of the entity-specific not found errors.
	ErrNotFound = errors.New("record not found")

	// ErrProfileNotFound indicates that the requested entity profile does not
	// exist in the store.
	ErrProfileNotFound = fmt.Errorf("%w: profile", ErrNotFound)

	// ErrInvalidRecord is returned when a record fails validation before
	// being stored. Check the wrapped error for the specific violation.
	ErrInvalidRecord = errors.New("invalid record")
)

// IsNotFoundError reports whether the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
