package commands

import (
	"context"
)

// RestoreOrderCommandHandler handles un-hiding soft-deleted orders.
type RestoreOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRestoreOrderCommandHandler creates a handler for restoring hidden orders.
func NewRestoreOrderCommandHandler(uowFactory OrderUoWFactory) RestoreOrderCommandHandler {
	return RestoreOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restore command. The order returns to its pre-hide
// status; the stage ledger was never touched by hiding, so work resumes
// from the same position.
func (h *RestoreOrderCommandHandler) Handle(ctx context.Context, cmd RestoreOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Restore(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
