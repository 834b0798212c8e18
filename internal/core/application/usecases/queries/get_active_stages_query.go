package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/guard"
)

var ErrGetActiveStagesQueryIsNotConstructed = errors.New(
	"GetActiveStagesQuery must be created via NewGetActiveStagesQuery constructor",
)

// GetActiveStagesQuery retrieves the work queue of one department: every
// active stage currently parked there, with its order context.
type GetActiveStagesQuery struct {
	departmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveStagesQuery creates a query for a department's work queue.
func NewGetActiveStagesQuery(departmentID kernel.UUID) (GetActiveStagesQuery, error) {
	if err := departmentID.Validate(); err != nil {
		return GetActiveStagesQuery{}, err
	}

	return GetActiveStagesQuery{
		departmentID: departmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveStagesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveStagesQueryIsNotConstructed)
}

// DepartmentID returns the department whose queue is requested.
func (q GetActiveStagesQuery) DepartmentID() kernel.UUID {
	return q.departmentID
}

// ActiveStageResponse represents one active stage waiting in a department,
// together with the state of its owning order.
type ActiveStageResponse struct {
	StageID        kernel.UUID
	OrderID        kernel.UUID
	InOrder        int
	OrderStatus    order.Status
	ResourceStatus order.ResourceStatus
	UserID         *kernel.UUID
}
