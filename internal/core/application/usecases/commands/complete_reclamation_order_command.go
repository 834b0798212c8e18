package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrCompleteReclamationOrderCommandIsNotConstructed = errors.New(
	"CompleteReclamationOrderCommand must be created via NewCompleteReclamationOrderCommand constructor",
)

// CompleteReclamationOrderCommand represents a request to mark a completed
// order as returned with a defect claim.
type CompleteReclamationOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteReclamationOrderCommand creates a command to mark an order as reclamation.
func NewCompleteReclamationOrderCommand(orderID kernel.UUID) (CompleteReclamationOrderCommand, error) {
	command := CompleteReclamationOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CompleteReclamationOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteReclamationOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteReclamationOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CompleteReclamationOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteReclamationOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
