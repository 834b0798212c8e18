package commands

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the department pipeline from reference data and creates the order
// with its complete stage ledger in a single transaction.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because the handler reads department reference data
// and writes the order aggregate in the same transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// One stage is created per department, in department sort order, all
// inactive. The order starts in New status and enters the pipeline later
// via StartOrderCommand.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	departments, err := uow.DepartmentRegistry().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(departments) == 0 {
		return errs.NewObjectNotFoundError("departments", "no departments configured")
	}

	departmentIDs := make([]kernel.UUID, 0, len(departments))
	for _, department := range departments {
		departmentIDs = append(departmentIDs, department.ID)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), departmentIDs)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
