package commands

import (
	"context"
)

// SetResourceStatusCommandHandler handles material readiness checks.
type SetResourceStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetResourceStatusCommandHandler creates a handler for readiness checks.
func NewSetResourceStatusCommandHandler(uowFactory OrderUoWFactory) SetResourceStatusCommandHandler {
	return SetResourceStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the readiness check. The new value replaces the old one
// unconditionally; readiness is advisory and not monotonic.
func (h *SetResourceStatusCommandHandler) Handle(ctx context.Context, cmd SetResourceStatusCommand) error {
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

	if err = aggregate.SetResourceStatus(cmd.ResourceStatus(), cmd.UserID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
