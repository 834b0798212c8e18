package queries

import (
	"context"

	"production/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStagesQueryHandler reads an order's stage ledger with department
// names joined in, in pipeline order.
type GetOrderStagesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStagesQueryHandler creates a handler for order ledger queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStagesQueryHandler(db *gorm.DB) GetOrderStagesQueryHandler {
	return GetOrderStagesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by pipeline position; an
// order without matching stages yields an empty slice, not an error.
func (h GetOrderStagesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStagesQuery,
) ([]OrderStageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			s.id,
			s.department_id,
			d.name,
			s.in_order,
			s.is_active,
			s.user_id,
			s.break_id
		FROM order_stages s
		JOIN departments d ON d.id = s.department_id
		WHERE s.order_id = ?
	`
	args := []any{query.OrderID().Bytes()}
	if query.ActiveOnly() {
		sql += ` AND s.is_active`
	}
	sql += ` ORDER BY s.in_order`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stages := make([]OrderStageResponse, 0)
	for rows.Next() {
		var (
			stage   OrderStageResponse
			id      uuid.UUID
			deptID  uuid.UUID
			userID  uuid.NullUUID
			breakID uuid.NullUUID
		)

		if err = rows.Scan(
			&id,
			&deptID,
			&stage.DepartmentName,
			&stage.InOrder,
			&stage.IsActive,
			&userID,
			&breakID,
		); err != nil {
			return nil, err
		}

		if stage.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if stage.DepartmentID, err = kernel.UUIDFromBytes(deptID[:]); err != nil {
			return nil, err
		}
		if stage.UserID, err = optionalUUID(userID); err != nil {
			return nil, err
		}
		if stage.BreakID, err = optionalUUID(breakID); err != nil {
			return nil, err
		}

		stages = append(stages, stage)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stages, nil
}

// optionalUUID converts a nullable database UUID into a domain UUID pointer.
func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
