package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrRecordBreakCommandIsNotConstructed = errors.New(
	"RecordBreakCommand must be created via NewRecordBreakCommand constructor",
)

// RecordBreakCommand represents attributing a defect found on an order to
// one of the departments it passed through. The break reason must come from
// the attributed department's own catalog.
type RecordBreakCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	departmentID kernel.UUID
	breakID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordBreakCommand creates a command to attribute a defect reason to a
// department's stage in the order.
func NewRecordBreakCommand(
	orderID kernel.UUID,
	departmentID kernel.UUID,
	breakID kernel.UUID,
) (RecordBreakCommand, error) {
	command := RecordBreakCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDepartmentID(departmentID),
		command.setBreakID(breakID),
	); err != nil {
		return RecordBreakCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordBreakCommand) Validate() error {
	return c.guard.Validate(ErrRecordBreakCommandIsNotConstructed)
}

// OrderID returns the order carrying the defect.
func (c RecordBreakCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DepartmentID returns the department the defect is attributed to.
func (c RecordBreakCommand) DepartmentID() kernel.UUID {
	return c.departmentID
}

// BreakID returns the defect reason from the department's catalog.
func (c RecordBreakCommand) BreakID() kernel.UUID {
	return c.breakID
}

func (c *RecordBreakCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordBreakCommand) setDepartmentID(departmentID kernel.UUID) error {
	if err := departmentID.Validate(); err != nil {
		return err
	}

	c.departmentID = departmentID
	return nil
}

func (c *RecordBreakCommand) setBreakID(breakID kernel.UUID) error {
	if err := breakID.Validate(); err != nil {
		return err
	}

	c.breakID = breakID
	return nil
}
