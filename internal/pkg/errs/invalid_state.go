package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidState is the sentinel error for operations attempted against
// an object whose current state forbids them.
var ErrInvalidState = errors.New("invalid state")

// InvalidStateError indicates that an operation was rejected because the
// target order or stage is in a state that does not allow it, for example
// activating a stage while another stage is already active.
type InvalidStateError struct {
	ParamName string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError without an underlying cause.
func NewInvalidStateError(paramName string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(paramName string, cause error) *InvalidStateError {
	return &InvalidStateError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidState, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidState, e.ParamName)
}

func (e *InvalidStateError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrInvalidState, e.Cause}
	}
	return []error{ErrInvalidState}
}
