package order

import (
	"fmt"

	"production/internal/pkg/errs"
)

// ResourceStatus tracks material readiness for an order. It is an
// independent axis from Status: an order can be in work while its
// materials are still being checked.
//
// Unlike Status, this axis is not a monotonic state machine. Every
// transition between valid values is allowed in both directions: a
// re-check may discover a shortfall after materials were already
// reported as sufficient. Readiness is advisory: putting an order into
// work does not hard-block on it.
type ResourceStatus int

const (
	// ResourceUnknown represents an invalid or undefined resource status.
	ResourceUnknown ResourceStatus = iota

	// ResourceNew means materials have not been checked yet.
	ResourceNew

	// ResourceEnough means materials for the order are available.
	ResourceEnough

	// ResourceNotEnough means a shortfall was found on check.
	ResourceNotEnough

	// ResourceNull means the order explicitly needs no materials,
	// a terminal negative distinct from ResourceNotEnough.
	ResourceNull
)

func getResourceStatusStrings() map[ResourceStatus]string {
	return map[ResourceStatus]string{
		ResourceUnknown:   "Unknown",
		ResourceNew:       "New",
		ResourceEnough:    "Enough",
		ResourceNotEnough: "NotEnough",
		ResourceNull:      "Null",
	}
}

func getValidResourceStatusStrings() map[ResourceStatus]string {
	//nolint:exhaustive // ResourceUnknown is intentionally excluded as it's invalid
	return map[ResourceStatus]string{
		ResourceNew:       "New",
		ResourceEnough:    "Enough",
		ResourceNotEnough: "NotEnough",
		ResourceNull:      "Null",
	}
}

// Validate checks if the ResourceStatus value is valid.
func (s ResourceStatus) Validate() error {
	if _, ok := getValidResourceStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"resource status is invalid",
			fmt.Errorf("%d is not a valid resource status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the resource status.
func (s ResourceStatus) String() string {
	if str, ok := getResourceStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
