package services

import (
	"errors"
	"fmt"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"production/internal/pkg/errs"
)

// ErrBreakNotInCatalog is returned when a defect reason is attributed to a
// department whose catalog does not contain it. Break reasons are scoped per
// department; attributing an upholstery defect to the frame shop is a caller
// mistake, not a storage miss.
var ErrBreakNotInCatalog = errors.New("break does not belong to department")

// BreakOption is one department a defect may be attributed to, together with
// the defect reasons that department's catalog offers. Options are produced
// in eligibility order: the reporting stage's own department first, then the
// upstream departments walked backward.
type BreakOption struct {
	DepartmentID kernel.UUID
	BreakIDs     []kernel.UUID
}

// BreakResolver is a domain service for defect attribution. It combines the
// order's stage ledger, which defines WHICH departments a defect may be
// attributed to, with the per-department defect catalogs, which define WHAT
// reasons each of those departments offers.
//
// Business rules:
//   - a defect found at a stage may be attributed to that stage's department
//     or to any department the order already passed through
//   - a defect reason must come from the attributed department's own catalog
//   - attribution annotates a historical stage and never moves the pipeline
type BreakResolver struct{}

// NewBreakResolver creates a new BreakResolver instance.
func NewBreakResolver() BreakResolver {
	return BreakResolver{}
}

// EligibleOptions lists the attribution choices for a defect found at the
// given stage. The catalog maps department IDs to the defect reasons they
// offer; a department missing from the catalog is still an eligible target,
// just with no predefined reasons.
func (r BreakResolver) EligibleOptions(
	o *order.Order,
	stageID kernel.UUID,
	catalog map[kernel.UUID][]kernel.UUID,
) ([]BreakOption, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	departments, err := o.EligibleBreakDepartments(stageID)
	if err != nil {
		return nil, err
	}

	options := make([]BreakOption, 0, len(departments))
	for _, departmentID := range departments {
		options = append(options, BreakOption{
			DepartmentID: departmentID,
			BreakIDs:     catalog[departmentID],
		})
	}
	return options, nil
}

// Attribute records the defect reason against the given department's stage in
// the order. The reason must be present in that department's catalog; the
// aggregate then resolves which stage carries the annotation.
func (r BreakResolver) Attribute(
	o *order.Order,
	departmentID kernel.UUID,
	breakID kernel.UUID,
	catalog map[kernel.UUID][]kernel.UUID,
) (*order.Stage, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := errors.Join(departmentID.Validate(), breakID.Validate()); err != nil {
		return nil, err
	}

	if !containsBreak(catalog[departmentID], breakID) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"breakID",
			fmt.Errorf("%w: break %s, department %s", ErrBreakNotInCatalog, breakID, departmentID),
		)
	}

	return o.RecordBreak(departmentID, breakID)
}

func containsBreak(breakIDs []kernel.UUID, breakID kernel.UUID) bool {
	for _, id := range breakIDs {
		if id.IsEqual(breakID) {
			return true
		}
	}
	return false
}
