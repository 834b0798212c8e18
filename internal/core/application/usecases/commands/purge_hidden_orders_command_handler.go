package commands

import (
	"context"
)

// PurgeHiddenOrdersCommandHandler handles permanent removal of soft-deleted
// orders past their retention window.
type PurgeHiddenOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeHiddenOrdersCommandHandler creates a handler for hidden order purging.
func NewPurgeHiddenOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeHiddenOrdersCommandHandler {
	return PurgeHiddenOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge and returns how many orders were removed.
// Stage rows are removed with their orders.
func (h *PurgeHiddenOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeHiddenOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OrderRepository().DeleteHiddenBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
