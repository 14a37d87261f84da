package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrNotFound        = errors.New("resource not found")
	ErrProfileNotFound = fmt.Errorf("%w: profile", ErrNotFound)
	ErrGoalNotFound    = fmt.Errorf("%w: goal", ErrNotFound)
	ErrMatchNotFound   = fmt.Errorf("%w: match", ErrNotFound)

	ErrInvalidRole     = errors.New("invalid profile role")
	ErrInvalidCategory = errors.New("invalid goal category")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
