// Package queries contains read operations in the CQRS architecture.
// Query handlers read the database directly with raw SQL, bypassing the
// domain model, and return flat response structures shaped for the callers.
package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrGetOrderStagesQueryIsNotConstructed = errors.New(
	"GetOrderStagesQuery must be created via NewGetOrderStagesQuery constructor",
)

// GetOrderStagesQuery retrieves the stage ledger of one order, optionally
// narrowed to the active stage only.
//
// Example:
//
//	query, err := NewGetOrderStagesQuery(orderID, false)
//	if err != nil {
//	    return err
//	}
//	stages, err := handler.Handle(ctx, query)
type GetOrderStagesQuery struct {
	orderID    kernel.UUID
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetOrderStagesQuery creates a query for an order's stage ledger.
// With activeOnly set, only the currently active stage is returned.
func NewGetOrderStagesQuery(orderID kernel.UUID, activeOnly bool) (GetOrderStagesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStagesQuery{}, err
	}

	return GetOrderStagesQuery{
		orderID:    orderID,
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStagesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStagesQueryIsNotConstructed)
}

// OrderID returns the order whose ledger is requested.
func (q GetOrderStagesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActiveOnly reports whether only the active stage is requested.
func (q GetOrderStagesQuery) ActiveOnly() bool {
	return q.activeOnly
}

// OrderStageResponse represents one stage of an order's ledger.
type OrderStageResponse struct {
	ID             kernel.UUID
	DepartmentID   kernel.UUID
	DepartmentName string
	InOrder        int
	IsActive       bool
	UserID         *kernel.UUID
	BreakID        *kernel.UUID
}
