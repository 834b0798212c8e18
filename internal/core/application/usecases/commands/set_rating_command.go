package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

var ErrSetRatingCommandIsNotConstructed = errors.New(
	"SetRatingCommand must be created via NewSetRatingCommand constructor",
)

// SetRatingCommand represents a request to record the quality score of a
// finished order. The score is applied once and never changed afterwards.
type SetRatingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	rating  int

	guard guard.ConstructorGuard
}

// NewSetRatingCommand creates a command to rate a finished order.
// The rating must fall within [order.MinRating, order.MaxRating].
func NewSetRatingCommand(orderID kernel.UUID, rating int) (SetRatingCommand, error) {
	command := SetRatingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRating(rating),
	); err != nil {
		return SetRatingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRatingCommand) Validate() error {
	return c.guard.Validate(ErrSetRatingCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c SetRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Rating returns the quality score to record.
func (c SetRatingCommand) Rating() int {
	return c.rating
}

func (c *SetRatingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetRatingCommand) setRating(rating int) error {
	if rating < order.MinRating || rating > order.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, order.MinRating, order.MaxRating)
	}

	c.rating = rating
	return nil
}
