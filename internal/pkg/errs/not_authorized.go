package errs

import (
	"errors"
	"fmt"
)

// ErrNotAuthorized is the sentinel error for data-ownership violations.
// This is distinct from role checks, which are enforced outside the engine:
// a NotAuthorizedError means the acting user does not hold the claim the
// operation requires, for example advancing a stage claimed by someone else.
var ErrNotAuthorized = errors.New("not authorized")

// NotAuthorizedError indicates that the acting user lacks the claim
// required by the operation.
type NotAuthorizedError struct {
	ParamName string
	Cause     error
}

// NewNotAuthorizedError creates a NotAuthorizedError without an underlying cause.
func NewNotAuthorizedError(paramName string) *NotAuthorizedError {
	return &NotAuthorizedError{ParamName: paramName}
}

// NewNotAuthorizedErrorWithCause creates a NotAuthorizedError wrapping an underlying cause.
func NewNotAuthorizedErrorWithCause(paramName string, cause error) *NotAuthorizedError {
	return &NotAuthorizedError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *NotAuthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrNotAuthorized, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrNotAuthorized, e.ParamName)
}

func (e *NotAuthorizedError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrNotAuthorized, e.Cause}
	}
	return []error{ErrNotAuthorized}
}
