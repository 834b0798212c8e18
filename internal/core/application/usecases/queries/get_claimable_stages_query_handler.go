package queries

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClaimableStagesQueryHandler reads the active stages a worker can claim.
// Department membership comes from the user_departments assignment table;
// workers only see stages of their own departments.
type GetClaimableStagesQueryHandler struct {
	db *gorm.DB
}

// NewGetClaimableStagesQueryHandler creates a handler for claimable stage queries.
func NewGetClaimableStagesQueryHandler(db *gorm.DB) GetClaimableStagesQueryHandler {
	return GetClaimableStagesQueryHandler{db: db}
}

// Handle executes the query. Every active stage of the worker's departments
// is offered, whatever the order's lifecycle status; only hidden orders are
// excluded, matching the department queue. Results come in department sort
// order, oldest order first within one.
func (h GetClaimableStagesQueryHandler) Handle(
	ctx context.Context,
	query GetClaimableStagesQuery,
) ([]ClaimableStageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.order_id,
			s.department_id,
			d.name,
			s.in_order,
			o.resource_status,
			s.user_id
		FROM order_stages s
		JOIN departments d ON d.id = s.department_id
		JOIN user_departments ud ON ud.department_id = s.department_id AND ud.user_id = ?
		JOIN orders o ON o.id = s.order_id
		WHERE s.is_active
		  AND o.status <> ?
		ORDER BY d.sort_order, o.created_at
	`, query.UserID().Bytes(), order.Hidden).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stages := make([]ClaimableStageResponse, 0)
	for rows.Next() {
		var (
			stage        ClaimableStageResponse
			stageID      uuid.UUID
			orderID      uuid.UUID
			departmentID uuid.UUID
			userID       uuid.NullUUID
		)

		if err = rows.Scan(
			&stageID,
			&orderID,
			&departmentID,
			&stage.DepartmentName,
			&stage.InOrder,
			&stage.ResourceStatus,
			&userID,
		); err != nil {
			return nil, err
		}

		if stage.StageID, err = kernel.UUIDFromBytes(stageID[:]); err != nil {
			return nil, err
		}
		if stage.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if stage.DepartmentID, err = kernel.UUIDFromBytes(departmentID[:]); err != nil {
			return nil, err
		}
		stage.ClaimedBySelf = userID.Valid && userID.UUID == query.UserID().Bytes()

		stages = append(stages, stage)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stages, nil
}
