package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrRestoreOrderCommandIsNotConstructed = errors.New(
	"RestoreOrderCommand must be created via NewRestoreOrderCommand constructor",
)

// RestoreOrderCommand represents a request to un-hide a soft-deleted order,
// returning it to the status it had when it was hidden.
type RestoreOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestoreOrderCommand creates a command to restore a hidden order.
func NewRestoreOrderCommand(orderID kernel.UUID) (RestoreOrderCommand, error) {
	command := RestoreOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return RestoreOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrRestoreOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c RestoreOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RestoreOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
