package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrStopOrderCommandIsNotConstructed = errors.New(
	"StopOrderCommand must be created via NewStopOrderCommand constructor",
)

// StopOrderCommand represents a request to pause work on an order.
// The stage ledger is left untouched so a later start resumes from the
// same position.
type StopOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStopOrderCommand creates a command to pause work on an order.
func NewStopOrderCommand(orderID kernel.UUID) (StopOrderCommand, error) {
	command := StopOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return StopOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StopOrderCommand) Validate() error {
	return c.guard.Validate(ErrStopOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c StopOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StopOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
