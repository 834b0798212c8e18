package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrAdvanceStageCommandIsNotConstructed = errors.New(
	"AdvanceStageCommand must be created via NewAdvanceStageCommand constructor",
)

// AdvanceStageCommand represents a worker finishing the active stage they
// claimed, moving the order to its next stage or completing it.
type AdvanceStageCommand struct { //nolint:recvcheck //using for validation
	stageID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceStageCommand creates a command for a worker to finish a stage.
func NewAdvanceStageCommand(stageID kernel.UUID, userID kernel.UUID) (AdvanceStageCommand, error) {
	command := AdvanceStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStageID(stageID),
		command.setUserID(userID),
	); err != nil {
		return AdvanceStageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStageCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStageCommandIsNotConstructed)
}

// StageID returns the stage being finished.
func (c AdvanceStageCommand) StageID() kernel.UUID {
	return c.stageID
}

// UserID returns the worker finishing the stage.
func (c AdvanceStageCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *AdvanceStageCommand) setStageID(stageID kernel.UUID) error {
	if err := stageID.Validate(); err != nil {
		return err
	}

	c.stageID = stageID
	return nil
}

func (c *AdvanceStageCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
