package queries

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetEligibleBreakDepartmentsQueryHandler reads the attribution targets for
// a defect found at a stage: the stage's own department and every upstream
// department, in descending pipeline order, with their defect catalogs.
type GetEligibleBreakDepartmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetEligibleBreakDepartmentsQueryHandler creates a handler for break
// eligibility queries.
func NewGetEligibleBreakDepartmentsQueryHandler(db *gorm.DB) GetEligibleBreakDepartmentsQueryHandler {
	return GetEligibleBreakDepartmentsQueryHandler{db: db}
}

// Handle executes the query. The subqueries pin the stage's order and
// pipeline position; every stage at or before that position is an eligible
// target. An unknown stage yields a not-found error.
func (h GetEligibleBreakDepartmentsQueryHandler) Handle(
	ctx context.Context,
	query GetEligibleBreakDepartmentsQuery,
) ([]EligibleBreakDepartmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stageID := query.StageID().Bytes()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.in_order,
			s.department_id,
			d.name,
			b.id,
			b.name
		FROM order_stages s
		JOIN departments d ON d.id = s.department_id
		LEFT JOIN breaks b ON b.department_id = s.department_id
		WHERE s.order_id = (SELECT order_id FROM order_stages WHERE id = ?)
		  AND s.in_order <= (SELECT in_order FROM order_stages WHERE id = ?)
		ORDER BY s.in_order DESC, b.name
	`, stageID, stageID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]EligibleBreakDepartmentResponse, 0)
	for rows.Next() {
		var (
			inOrder      int
			departmentID uuid.UUID
			name         string
			breakID      uuid.NullUUID
			breakName    *string
		)

		if err = rows.Scan(&inOrder, &departmentID, &name, &breakID, &breakName); err != nil {
			return nil, err
		}

		// Rows arrive grouped by stage; open a new department entry
		// whenever the position changes.
		if len(departments) == 0 || departments[len(departments)-1].InOrder != inOrder {
			convertedID, idErr := kernel.UUIDFromBytes(departmentID[:])
			if idErr != nil {
				return nil, idErr
			}
			departments = append(departments, EligibleBreakDepartmentResponse{
				DepartmentID:   convertedID,
				DepartmentName: name,
				InOrder:        inOrder,
				Breaks:         []BreakReasonResponse{},
			})
		}

		if breakID.Valid && breakName != nil {
			convertedBreakID, idErr := kernel.UUIDFromBytes(breakID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			last := len(departments) - 1
			departments[last].Breaks = append(departments[last].Breaks, BreakReasonResponse{
				ID:   convertedBreakID,
				Name: *breakName,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(departments) == 0 {
		return nil, errs.NewObjectNotFoundError("order stage", query.StageID().String())
	}

	return departments, nil
}
