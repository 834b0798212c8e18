package commands

import (
	"errors"
	"time"

	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

var ErrPurgeHiddenOrdersCommandIsNotConstructed = errors.New(
	"PurgeHiddenOrdersCommand must be created via NewPurgeHiddenOrdersCommand constructor",
)

// PurgeHiddenOrdersCommand represents a housekeeping request to permanently
// remove orders that were soft-deleted before the given cutoff.
type PurgeHiddenOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeHiddenOrdersCommand creates a command to purge hidden orders not
// touched since the cutoff.
func NewPurgeHiddenOrdersCommand(cutoff time.Time) (PurgeHiddenOrdersCommand, error) {
	command := PurgeHiddenOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCutoff(cutoff); err != nil {
		return PurgeHiddenOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeHiddenOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeHiddenOrdersCommandIsNotConstructed)
}

// Cutoff returns the retention boundary; hidden orders untouched since
// before it are removed.
func (c PurgeHiddenOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *PurgeHiddenOrdersCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}

	c.cutoff = cutoff
	return nil
}
