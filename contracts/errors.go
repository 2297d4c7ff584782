package contracts

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the only error kind defined at the contract level.
// Providers return it (wrapped in an InputError) when an input falls
// outside the contract's stated domain. Neither consumers nor the
// composition point recover from it; it surfaces to the caller as-is.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports an input outside the contract's stated domain.
type InputError struct {
	// Provider is the name of the provider that rejected the input.
	Provider string

	// Op is the contract operation that was invoked (e.g. "add").
	Op string

	// Message describes which constraint was violated.
	Message string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: invalid input: %s", e.Provider, e.Op, e.Message)
}

// Unwrap makes errors.Is(err, ErrInvalidInput) hold for every InputError.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInputError creates a new InputError.
func NewInputError(provider, op, message string) *InputError {
	return &InputError{
		Provider: provider,
		Op:       op,
		Message:  message,
	}
}

// IsInvalidInput checks whether err is (or wraps) a contract InputError.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
