package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand represents a request to put an order into work.
// Starting a fresh order also opens its pipeline by activating the first
// stage; resuming a stopped order continues from where it paused.
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartOrderCommand creates a command to put an order into work.
func NewStartOrderCommand(orderID kernel.UUID) (StartOrderCommand, error) {
	command := StartOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return StartOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c StartOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StartOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
