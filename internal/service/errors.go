package service

import (
	"errors"

	"github.com/mvestberg/phaseplan/internal/repository"
)

// ErrNotFound reports a missing student, phase, or task. It aliases the
// repository sentinel so errors.Is works across layers.
var ErrNotFound = repository.ErrNotFound

// ErrInvalidInput reports a request that failed validation before any write.
var ErrInvalidInput = errors.New("invalid input")

// invalidInput wraps ErrInvalidInput with a human-readable reason.
func invalidInput(reason string) error {
	return &invalidInputError{reason: reason}
}

type invalidInputError struct {
	reason string
}

func (e *invalidInputError) Error() string {
	return "invalid input: " + e.reason
}

func (e *invalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
