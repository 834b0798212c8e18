package order

import (
	"fmt"

	"production/internal/pkg/errs"
)

// Status represents the lifecycle state of a production order.
// It implements a state machine with defined transitions so orders
// follow the correct workshop workflow.
//
// State transitions:
//
//	New ──────> InWork ──────> Completed ──> CompletedReclamation
//	             │  ▲             ▲
//	             ▼  │             │
//	             Stop ────────────┘
//
//	any non-hidden state ──> Hidden (soft delete)
//	Hidden ──> recorded prior state (restore)
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first created.
	// Orders in this status are waiting to be put into work.
	New

	// InWork indicates the order is moving through its stage pipeline.
	InWork

	// Stop indicates work on the order is paused.
	// A stopped order can be put back into work.
	Stop

	// Completed indicates every stage of the order has been finished.
	Completed

	// CompletedReclamation indicates a completed order was returned
	// with a defect claim. Terminal.
	CompletedReclamation

	// Hidden indicates the order was soft-deleted. Terminal; hidden
	// orders are eventually purged by housekeeping.
	Hidden
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "Unknown",
		New:                  "New",
		InWork:               "InWork",
		Stop:                 "Stop",
		Completed:            "Completed",
		CompletedReclamation: "CompletedReclamation",
		Hidden:               "Hidden",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:                  "New",
		InWork:               "InWork",
		Stop:                 "Stop",
		Completed:            "Completed",
		CompletedReclamation: "CompletedReclamation",
		Hidden:               "Hidden",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other unmapped values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// SetWork transitions the status to InWork.
//
// Valid transitions:
//   - New -> InWork (order started)
//   - Stop -> InWork (paused order resumed)
//
// Returns (InWork, nil) on a valid transition, or (0, error) otherwise.
func (s Status) SetWork() (Status, error) {
	if s != New && s != Stop {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to put into work", s.String()),
		)
	}

	return InWork, nil
}

// SetStop transitions the status to Stop.
//
// Valid transitions:
//   - InWork -> Stop (work paused)
//
// Returns (Stop, nil) on a valid transition, or (0, error) otherwise.
func (s Status) SetStop() (Status, error) {
	if s != InWork {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to stop", s.String()),
		)
	}

	return Stop, nil
}

// Complete transitions the status to Completed.
// Reached only through advancing past the last stage; there is no
// other producer of the Completed status in this engine. Advancing
// carries no order-status precondition, so finishing the last stage
// of a paused order completes it as well.
//
// Valid transitions:
//   - InWork -> Completed
//   - Stop -> Completed (last stage advanced while the order was paused)
//
// Returns (Completed, nil) on a valid transition, or (0, error) otherwise.
func (s Status) Complete() (Status, error) {
	if s != InWork && s != Stop {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// CompleteReclamation transitions the status to CompletedReclamation.
//
// Valid transitions:
//   - Completed -> CompletedReclamation (finished order returned with a defect claim)
//
// Returns (CompletedReclamation, nil) on a valid transition, or (0, error) otherwise.
func (s Status) CompleteReclamation() (Status, error) {
	if s != Completed {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to mark as reclamation", s.String()),
		)
	}

	return CompletedReclamation, nil
}

// Hide transitions the status to Hidden (soft delete).
// Every valid status except Hidden itself may be hidden.
//
// Returns (Hidden, nil) on a valid transition, or (0, error) otherwise.
func (s Status) Hide() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s == Hidden {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("order is already hidden"),
		)
	}

	return Hidden, nil
}

// Restore transitions a Hidden status back to the recorded prior status.
// The prior status is remembered by the aggregate when it is hidden.
//
// Valid transitions:
//   - Hidden -> prior (any valid non-Hidden status)
//
// Returns (prior, nil) on a valid transition, or (0, error) otherwise.
func (s Status) Restore(prior Status) (Status, error) {
	if s != Hidden {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a hidden status to restore", s.String()),
		)
	}
	if prior.Validate() != nil || prior == Hidden {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("hidden order has no restorable prior status"),
		)
	}

	return prior, nil
}

// CanRate reports whether an order in this status may receive a rating.
// Ratings apply only once an order reached a terminal completed state.
func (s Status) CanRate() bool {
	return s == Completed || s == CompletedReclamation
}
