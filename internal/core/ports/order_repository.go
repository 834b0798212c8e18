// Package ports defines the persistence contracts for the production domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and deleting order entities
// together with their complete stage ledger.
//
// Implementations running inside a transaction must lock the order row on
// Get and GetByStageID (SELECT ... FOR UPDATE) so concurrent claim/advance
// operations on the same order serialize instead of clobbering the
// single-active-stage invariant.
type OrderRepository interface {
	// Add persists a new order aggregate and its stage ledger to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// claim, activity and break changes on its stages.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its full stage ledger.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByStageID retrieves the order aggregate owning the given stage.
	// Stage-level operations address stages directly; the owning aggregate
	// is resolved and locked before the stage is touched.
	GetByStageID(ctx context.Context, stageID kernel.UUID) (*order.Order, error)

	// Delete permanently removes a single order and its stage ledger.
	// Returns a not-found error if the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteHiddenBefore permanently removes orders that were soft-deleted
	// (Hidden) and not updated since the given cutoff. Stage rows go with
	// their order. Returns the number of orders removed.
	DeleteHiddenBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
