package commands

import (
	"context"
)

// StopOrderCommandHandler handles pausing work on an order.
type StopOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStopOrderCommandHandler creates a handler for stopping orders.
func NewStopOrderCommandHandler(uowFactory OrderUoWFactory) StopOrderCommandHandler {
	return StopOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stop command, transitioning the order InWork -> Stop.
func (h *StopOrderCommandHandler) Handle(ctx context.Context, cmd StopOrderCommand) error {
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

	if err = aggregate.SetStop(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
