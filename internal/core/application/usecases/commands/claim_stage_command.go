package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrClaimStageCommandIsNotConstructed = errors.New(
	"ClaimStageCommand must be created via NewClaimStageCommand constructor",
)

// ClaimStageCommand represents a worker taking the active stage of an order.
// A claim is a revocable assignment: claiming a stage already claimed by
// another worker reassigns it.
type ClaimStageCommand struct { //nolint:recvcheck //using for validation
	stageID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimStageCommand creates a command for a worker to claim a stage.
func NewClaimStageCommand(stageID kernel.UUID, userID kernel.UUID) (ClaimStageCommand, error) {
	command := ClaimStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStageID(stageID),
		command.setUserID(userID),
	); err != nil {
		return ClaimStageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimStageCommand) Validate() error {
	return c.guard.Validate(ErrClaimStageCommandIsNotConstructed)
}

// StageID returns the stage being claimed.
func (c ClaimStageCommand) StageID() kernel.UUID {
	return c.stageID
}

// UserID returns the claiming worker.
func (c ClaimStageCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *ClaimStageCommand) setStageID(stageID kernel.UUID) error {
	if err := stageID.Validate(); err != nil {
		return err
	}

	c.stageID = stageID
	return nil
}

func (c *ClaimStageCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
