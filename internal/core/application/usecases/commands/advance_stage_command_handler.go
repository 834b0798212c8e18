package commands

import (
	"context"

	"production/internal/core/domain/model/kernel"
)

// AdvanceStageResult reports where the pipeline moved after a stage was
// finished. NextStageID and NextDepartmentID are nil when the finished stage
// was the last one and the order completed.
type AdvanceStageResult struct {
	OrderID          kernel.UUID
	OrderCompleted   bool
	NextStageID      *kernel.UUID
	NextDepartmentID *kernel.UUID
}

// AdvanceStageCommandHandler handles workers finishing their claimed stages.
// Deactivating the finished stage and activating its successor happen in one
// transaction on the locked order row, keeping at most one stage active.
type AdvanceStageCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceStageCommandHandler creates a handler for advancing stages.
func NewAdvanceStageCommandHandler(uowFactory OrderUoWFactory) AdvanceStageCommandHandler {
	return AdvanceStageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance. Only the worker claiming the active stage
// may finish it; finishing the last stage completes the order.
func (h *AdvanceStageCommandHandler) Handle(ctx context.Context, cmd AdvanceStageCommand) (AdvanceStageResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceStageResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceStageResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByStageID(ctx, cmd.StageID())
	if err != nil {
		return AdvanceStageResult{}, err
	}

	_, next, err := aggregate.AdvanceStage(cmd.StageID(), cmd.UserID())
	if err != nil {
		return AdvanceStageResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return AdvanceStageResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceStageResult{}, err
	}

	result := AdvanceStageResult{
		OrderID:        aggregate.ID(),
		OrderCompleted: next == nil,
	}
	if next != nil {
		nextStageID := next.ID()
		nextDepartmentID := next.DepartmentID()
		result.NextStageID = &nextStageID
		result.NextDepartmentID = &nextDepartmentID
	}
	return result, nil
}
