package restq

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a raw query parameter that cannot be converted.
//
// It is the only error kind this package returns. Conversion has no
// partial-success mode: the first invalid parameter aborts the whole call
// and no descriptor is returned.
//
// Messages name the offending value and its Go type so the caller (usually
// an HTTP layer) can surface a precise 4xx-style response.
type InvalidInputError struct {
	// Param is the raw parameter being parsed (e.g., "_sort", "_limit").
	// Empty when the failure is not tied to one named parameter.
	Param string

	// Message is a human-readable description of the failure.
	Message string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("invalid input: %s: %s", e.Param, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// IsInvalidInput returns true if the error is an InvalidInputError.
// Uses errors.As to handle wrapped errors.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}

// invalidInputf creates an InvalidInputError with a formatted message.
// All failure sites go through this constructor so messages stay uniform.
func invalidInputf(param, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{
		Param:   param,
		Message: fmt.Sprintf(format, args...),
	}
}
