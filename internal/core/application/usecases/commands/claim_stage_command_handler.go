package commands

import (
	"context"
)

// ClaimStageCommandHandler handles workers claiming active stages.
// The owning order is resolved and locked through the stage, so two workers
// racing for the same stage serialize on the order row.
type ClaimStageCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimStageCommandHandler creates a handler for stage claims.
func NewClaimStageCommandHandler(uowFactory OrderUoWFactory) ClaimStageCommandHandler {
	return ClaimStageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim. The stage must be the active stage of its
// order; an existing claim by another worker is overwritten.
func (h *ClaimStageCommandHandler) Handle(ctx context.Context, cmd ClaimStageCommand) error {
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
	aggregate, err := orderRepo.GetByStageID(ctx, cmd.StageID())
	if err != nil {
		return err
	}

	if _, err = aggregate.ClaimStage(cmd.StageID(), cmd.UserID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
