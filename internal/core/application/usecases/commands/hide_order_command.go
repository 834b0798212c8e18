package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrHideOrderCommandIsNotConstructed = errors.New(
	"HideOrderCommand must be created via NewHideOrderCommand constructor",
)

// HideOrderCommand represents a request to soft-delete an order.
// Hidden orders disappear from listings and are eventually purged by
// housekeeping.
type HideOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewHideOrderCommand creates a command to soft-delete an order.
func NewHideOrderCommand(orderID kernel.UUID) (HideOrderCommand, error) {
	command := HideOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return HideOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c HideOrderCommand) Validate() error {
	return c.guard.Validate(ErrHideOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c HideOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *HideOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
