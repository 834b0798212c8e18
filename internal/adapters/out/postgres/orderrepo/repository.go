package orderrepo

import (
	"context"
	"errors"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Get and GetByStageID lock the order row (SELECT ... FOR UPDATE). When the
// repository runs inside a unit of work transaction, concurrent claim and
// advance operations on the same order serialize on that lock; the loser
// re-reads the moved state and fails its precondition instead of clobbering
// the single-active-stage invariant.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its stage ledger to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Stage rows are updated
// field-selectively so cleared values (deactivated stage, removed claim)
// are persisted too; positions and departments are immutable and skipped.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	tx := r.db.WithContext(ctx)

	result := tx.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "HiddenFrom", "ResourceStatus", "ResourceActorID", "Rating", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	for _, stageDTO := range dto.Stages {
		stageResult := tx.Model(&StageDTO{}).
			Where("id = ?", stageDTO.ID).
			Select("IsActive", "UserID", "BreakID").
			Updates(&stageDTO)
		if stageResult.Error != nil {
			return stageResult.Error
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its complete stage ledger.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.get(ctx, id.Bytes())
}

// GetByStageID retrieves the order owning the given stage.
// The stage row resolves the owner; the order row itself is then loaded
// under the lock, same as Get.
func (r *GormOrderRepository) GetByStageID(ctx context.Context, stageID kernel.UUID) (*order.Order, error) {
	if err := stageID.Validate(); err != nil {
		return nil, err
	}

	var stageDTO StageDTO
	if err := r.db.WithContext(ctx).First(&stageDTO, "id = ?", stageID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order stage", stageID.String())
		}
		return nil, err
	}

	return r.get(ctx, stageDTO.OrderID)
}

// Delete permanently removes a single order. Stage rows are removed by the
// ON DELETE CASCADE on order_id.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// DeleteHiddenBefore permanently removes hidden orders not updated since the
// cutoff. Stage rows are removed by the ON DELETE CASCADE on order_id.
func (r *GormOrderRepository) DeleteHiddenBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", int(order.Hidden), cutoff).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *GormOrderRepository) get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	tx := r.db.WithContext(ctx)

	var dto OrderDTO
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	if err := tx.Order("in_order").Find(&dto.Stages, "order_id = ?", id).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}
