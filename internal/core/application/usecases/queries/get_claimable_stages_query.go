package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/guard"
)

var ErrGetClaimableStagesQueryIsNotConstructed = errors.New(
	"GetClaimableStagesQuery must be created via NewGetClaimableStagesQuery constructor",
)

// GetClaimableStagesQuery retrieves the stages a worker can claim or is
// already working on: active stages of visible orders parked in any of the
// worker's departments.
type GetClaimableStagesQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClaimableStagesQuery creates a query for a worker's claimable stages.
func NewGetClaimableStagesQuery(userID kernel.UUID) (GetClaimableStagesQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetClaimableStagesQuery{}, err
	}

	return GetClaimableStagesQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClaimableStagesQuery) Validate() error {
	return q.guard.Validate(ErrGetClaimableStagesQueryIsNotConstructed)
}

// UserID returns the worker whose claimable stages are requested.
func (q GetClaimableStagesQuery) UserID() kernel.UUID {
	return q.userID
}

// ClaimableStageResponse represents one stage a worker may claim,
// with department context for display.
type ClaimableStageResponse struct {
	StageID        kernel.UUID
	OrderID        kernel.UUID
	DepartmentID   kernel.UUID
	DepartmentName string
	InOrder        int
	ResourceStatus order.ResourceStatus
	ClaimedBySelf  bool
}
