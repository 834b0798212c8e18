// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The stage ledger lives in its own table and is saved and loaded together
// with the order; stage rows are removed with their order via the cascade.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Status          int        `gorm:"index"`
	HiddenFrom      *int
	ResourceStatus  int
	ResourceActorID *uuid.UUID `gorm:"type:uuid"`
	Rating          *int
	Stages          []StageDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// StageDTO represents one row of an order's stage ledger.
// The unique index on (order_id, in_order) backs the no-gaps,
// one-stage-per-position invariant at the storage level.
type StageDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_order_stages_position,priority:1"`
	DepartmentID uuid.UUID  `gorm:"type:uuid;index"`
	InOrder      int        `gorm:"uniqueIndex:idx_order_stages_position,priority:2"`
	IsActive     bool       `gorm:"index"`
	UserID       *uuid.UUID `gorm:"type:uuid"`
	BreakID      *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for stage entities.
func (StageDTO) TableName() string {
	return "order_stages"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	stages := aggregate.Stages()
	stageDTOs := make([]StageDTO, 0, len(stages))
	for _, stage := range stages {
		stageDTOs = append(stageDTOs, StageDTO{
			ID:           stage.ID().Bytes(),
			OrderID:      aggregate.ID().Bytes(),
			DepartmentID: stage.DepartmentID().Bytes(),
			InOrder:      stage.InOrder(),
			IsActive:     stage.IsActive(),
			UserID:       optionalBytes(stage.UserID()),
			BreakID:      optionalBytes(stage.BreakID()),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Status:          int(aggregate.Status()),
		HiddenFrom:      optionalStatus(aggregate.HiddenFrom()),
		ResourceStatus:  int(aggregate.ResourceStatus()),
		ResourceActorID: optionalBytes(aggregate.ResourceActor()),
		Rating:          aggregate.Rating(),
		Stages:          stageDTOs,
	}
}

// toDomain converts database DTOs to an order domain aggregate.
// Reconstructs the complete aggregate including the stage ledger using
// RestoreOrder, which re-validates the ledger invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	resourceActorID, err := optionalDomain(dto.ResourceActorID)
	if err != nil {
		return nil, err
	}

	stages := make([]*order.Stage, 0, len(dto.Stages))
	for _, stageDTO := range dto.Stages {
		stage, stageErr := stageToDomain(stageDTO)
		if stageErr != nil {
			return nil, stageErr
		}
		stages = append(stages, stage)
	}

	hiddenFrom := order.Unknown
	if dto.HiddenFrom != nil {
		hiddenFrom = order.Status(*dto.HiddenFrom)
	}

	return order.RestoreOrder(
		id,
		order.Status(dto.Status),
		hiddenFrom,
		order.ResourceStatus(dto.ResourceStatus),
		dto.Rating,
		resourceActorID,
		stages,
	)
}

func stageToDomain(dto StageDTO) (*order.Stage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	departmentID, err := kernel.UUIDFromBytes(dto.DepartmentID[:])
	if err != nil {
		return nil, err
	}

	userID, err := optionalDomain(dto.UserID)
	if err != nil {
		return nil, err
	}

	breakID, err := optionalDomain(dto.BreakID)
	if err != nil {
		return nil, err
	}

	return order.RestoreStage(id, departmentID, dto.InOrder, dto.IsActive, userID, breakID)
}

// optionalStatus maps the Unknown sentinel to a NULL column value.
func optionalStatus(s order.Status) *int {
	if s == order.Unknown {
		return nil
	}
	v := int(s)
	return &v
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalDomain(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
