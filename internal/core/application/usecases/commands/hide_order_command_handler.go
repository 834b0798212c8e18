package commands

import (
	"context"
)

// HideOrderCommandHandler handles soft-deleting orders.
type HideOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewHideOrderCommandHandler creates a handler for hiding orders.
func NewHideOrderCommandHandler(uowFactory OrderUoWFactory) HideOrderCommandHandler {
	return HideOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hide command, transitioning the order to Hidden.
func (h *HideOrderCommandHandler) Handle(ctx context.Context, cmd HideOrderCommand) error {
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

	if err = aggregate.Hide(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
