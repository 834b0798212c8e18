package queries

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveStagesQueryHandler reads the active stages parked in one
// department across all visible orders.
type GetActiveStagesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveStagesQueryHandler creates a handler for department queue queries.
func NewGetActiveStagesQueryHandler(db *gorm.DB) GetActiveStagesQueryHandler {
	return GetActiveStagesQueryHandler{db: db}
}

// Handle executes the query. Hidden orders never show up in a department
// queue; results come oldest order first so the queue drains fairly.
func (h GetActiveStagesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveStagesQuery,
) ([]ActiveStageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.order_id,
			s.in_order,
			o.status,
			o.resource_status,
			s.user_id
		FROM order_stages s
		JOIN orders o ON o.id = s.order_id
		WHERE s.department_id = ?
		  AND s.is_active
		  AND o.status != ?
		ORDER BY o.created_at
	`, query.DepartmentID().Bytes(), order.Hidden).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stages := make([]ActiveStageResponse, 0)
	for rows.Next() {
		var (
			stage   ActiveStageResponse
			stageID uuid.UUID
			orderID uuid.UUID
			userID  uuid.NullUUID
		)

		if err = rows.Scan(
			&stageID,
			&orderID,
			&stage.InOrder,
			&stage.OrderStatus,
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
		if stage.UserID, err = optionalUUID(userID); err != nil {
			return nil, err
		}

		stages = append(stages, stage)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stages, nil
}
