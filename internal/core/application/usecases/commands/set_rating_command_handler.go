package commands

import (
	"context"
)

// SetRatingCommandHandler handles recording the quality score of a finished order.
type SetRatingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetRatingCommandHandler creates a handler for order rating.
func NewSetRatingCommandHandler(uowFactory OrderUoWFactory) SetRatingCommandHandler {
	return SetRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command. The order must be in a terminal
// completed state and not rated yet.
func (h *SetRatingCommandHandler) Handle(ctx context.Context, cmd SetRatingCommand) error {
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

	if err = aggregate.SetRating(cmd.Rating()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
