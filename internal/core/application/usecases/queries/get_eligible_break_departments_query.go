package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrGetEligibleBreakDepartmentsQueryIsNotConstructed = errors.New(
	"GetEligibleBreakDepartmentsQuery must be created via NewGetEligibleBreakDepartmentsQuery constructor",
)

// GetEligibleBreakDepartmentsQuery retrieves, for a defect found at one
// stage, the departments it may be attributed to together with each
// department's defect catalog. The reporting stage's own department comes
// first, then the upstream departments walked backward.
type GetEligibleBreakDepartmentsQuery struct {
	stageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetEligibleBreakDepartmentsQuery creates a query for a stage's
// eligible break attribution targets.
func NewGetEligibleBreakDepartmentsQuery(stageID kernel.UUID) (GetEligibleBreakDepartmentsQuery, error) {
	if err := stageID.Validate(); err != nil {
		return GetEligibleBreakDepartmentsQuery{}, err
	}

	return GetEligibleBreakDepartmentsQuery{
		stageID: stageID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEligibleBreakDepartmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetEligibleBreakDepartmentsQueryIsNotConstructed)
}

// StageID returns the stage where the defect was found.
func (q GetEligibleBreakDepartmentsQuery) StageID() kernel.UUID {
	return q.stageID
}

// BreakReasonResponse represents one predefined defect reason.
type BreakReasonResponse struct {
	ID   kernel.UUID
	Name string
}

// EligibleBreakDepartmentResponse represents one department a defect may be
// attributed to, with the defect reasons its catalog offers.
type EligibleBreakDepartmentResponse struct {
	DepartmentID   kernel.UUID
	DepartmentName string
	InOrder        int
	Breaks         []BreakReasonResponse
}
