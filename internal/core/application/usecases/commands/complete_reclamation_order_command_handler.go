package commands

import (
	"context"
)

// CompleteReclamationOrderCommandHandler handles marking completed orders
// as returned with a defect claim.
type CompleteReclamationOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteReclamationOrderCommandHandler creates a handler for reclamation marking.
func NewCompleteReclamationOrderCommandHandler(uowFactory OrderUoWFactory) CompleteReclamationOrderCommandHandler {
	return CompleteReclamationOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reclamation command, transitioning the order
// Completed -> CompletedReclamation.
func (h *CompleteReclamationOrderCommandHandler) Handle(ctx context.Context, cmd CompleteReclamationOrderCommand) error {
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

	if err = aggregate.CompleteReclamation(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
