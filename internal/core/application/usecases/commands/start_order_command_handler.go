package commands

import (
	"context"
)

// StartOrderCommandHandler handles putting an order into work.
type StartOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartOrderCommandHandler creates a handler for starting orders.
func NewStartOrderCommandHandler(uowFactory OrderUoWFactory) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command.
// Transitions the order to InWork. A never-started order (no stage active
// yet) additionally gets its first stage activated; a stopped order resumes
// with its ledger untouched.
func (h *StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) error {
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

	if err = aggregate.SetWork(); err != nil {
		return err
	}
	if aggregate.ActiveStage() == nil {
		if err = aggregate.ActivateFirstStage(); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
