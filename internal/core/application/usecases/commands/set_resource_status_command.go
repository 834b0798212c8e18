package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/guard"
)

var ErrSetResourceStatusCommandIsNotConstructed = errors.New(
	"SetResourceStatusCommand must be created via NewSetResourceStatusCommand constructor",
)

// SetResourceStatusCommand represents a material readiness check made by a
// storage worker. The acting user is recorded for audit.
type SetResourceStatusCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	resourceStatus order.ResourceStatus
	userID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetResourceStatusCommand creates a command to record a material
// readiness check for an order.
func NewSetResourceStatusCommand(
	orderID kernel.UUID,
	resourceStatus order.ResourceStatus,
	userID kernel.UUID,
) (SetResourceStatusCommand, error) {
	command := SetResourceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setResourceStatus(resourceStatus),
		command.setUserID(userID),
	); err != nil {
		return SetResourceStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetResourceStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetResourceStatusCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c SetResourceStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ResourceStatus returns the readiness value to record.
func (c SetResourceStatusCommand) ResourceStatus() order.ResourceStatus {
	return c.resourceStatus
}

// UserID returns the storage worker performing the check.
func (c SetResourceStatusCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *SetResourceStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetResourceStatusCommand) setResourceStatus(resourceStatus order.ResourceStatus) error {
	if err := resourceStatus.Validate(); err != nil {
		return err
	}

	c.resourceStatus = resourceStatus
	return nil
}

func (c *SetResourceStatusCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
