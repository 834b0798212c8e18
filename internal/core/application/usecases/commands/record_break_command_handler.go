package commands

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/services"
)

// RecordBreakCommandHandler handles defect attribution. It loads the
// department's defect catalog and the order in one transaction and delegates
// the attribution rules to the BreakResolver domain service.
type RecordBreakCommandHandler struct {
	uowFactory    UoWFactory
	breakResolver services.BreakResolver
}

// NewRecordBreakCommandHandler creates a handler for defect attribution.
func NewRecordBreakCommandHandler(
	uowFactory UoWFactory,
	breakResolver services.BreakResolver,
) RecordBreakCommandHandler {
	return RecordBreakCommandHandler{
		uowFactory:    uowFactory,
		breakResolver: breakResolver,
	}
}

// Handle processes the attribution. The break reason must belong to the
// attributed department's catalog, and the order must have a stage for that
// department; the annotation lands on the occurrence latest in the pipeline.
func (h *RecordBreakCommandHandler) Handle(ctx context.Context, cmd RecordBreakCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	breaks, err := uow.DepartmentRegistry().GetBreaks(ctx, []kernel.UUID{cmd.DepartmentID()})
	if err != nil {
		return err
	}

	catalog := make(map[kernel.UUID][]kernel.UUID, len(breaks))
	for departmentID, reasons := range breaks {
		ids := make([]kernel.UUID, 0, len(reasons))
		for _, reason := range reasons {
			ids = append(ids, reason.ID)
		}
		catalog[departmentID] = ids
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = h.breakResolver.Attribute(aggregate, cmd.DepartmentID(), cmd.BreakID(), catalog); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
