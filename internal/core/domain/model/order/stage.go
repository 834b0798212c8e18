package order

import (
	"errors"
	"fmt"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"
)

var (
	// ErrStageIsNotConstructed indicates that the Stage was not properly
	// initialized through the NewStage or RestoreStage constructor functions.
	ErrStageIsNotConstructed = errors.New("Stage must be created via NewStage or RestoreStage constructor")
)

// Stage represents an order's assignment to one department in pipeline order.
// It is a child entity of the Order aggregate: stages are created in bulk when
// the order is created, mutated in place by claim/advance/break operations,
// and destroyed only together with their owning order.
//
// Key business rules:
//   - inOrder is the 1-based position in the order's pipeline, unique within an order
//   - a stage moves inactive -> active (activation) -> inactive (advance) and
//     never becomes active again after being advanced past
//   - userID holds the current worker claim; a claim is revocable and
//     overwritable, the worker does not own the stage
//   - breakID, once set, marks this historical stage as the attributed source
//     of a downstream defect; at most one break per stage
//
// All mutations go through the owning Order so the single-active-stage
// invariant is enforced in one place.
type Stage struct {
	// id uniquely identifies the stage
	id kernel.UUID

	// departmentID references the department responsible for this stage
	departmentID kernel.UUID

	// inOrder is the 1-based pipeline position within the owning order
	inOrder int

	// isActive marks the single stage currently eligible for claim/work
	isActive bool

	// userID points to the worker currently claiming the stage, nil if unclaimed
	userID *kernel.UUID

	// breakID points to the attributed defect reason, nil if none recorded
	breakID *kernel.UUID

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewStage creates a new inactive, unclaimed Stage at the given pipeline position.
// Stages are constructed by the Order aggregate during order creation; the
// position must be a positive 1-based index.
func NewStage(id kernel.UUID, departmentID kernel.UUID, inOrder int) (*Stage, error) {
	stage := &Stage{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		stage.setID(id),
		stage.setDepartmentID(departmentID),
		stage.setInOrder(inOrder),
	); err != nil {
		return nil, err
	}

	return stage, nil
}

// RestoreStage reconstructs a Stage from persistent storage, including its
// activity flag, current claim and recorded break attribution.
func RestoreStage(
	id kernel.UUID,
	departmentID kernel.UUID,
	inOrder int,
	isActive bool,
	userID *kernel.UUID,
	breakID *kernel.UUID,
) (*Stage, error) {
	stage, err := NewStage(id, departmentID, inOrder)
	if err != nil {
		return nil, err
	}

	if userID != nil {
		if err = userID.Validate(); err != nil {
			return nil, err
		}
	}
	if breakID != nil {
		if err = breakID.Validate(); err != nil {
			return nil, err
		}
	}

	stage.isActive = isActive
	stage.userID = userID
	stage.breakID = breakID
	return stage, nil
}

// Validate ensures the Stage instance was properly constructed.
func (s *Stage) Validate() error {
	if s == nil {
		return ErrStageIsNotConstructed
	}
	return s.guard.Validate(ErrStageIsNotConstructed)
}

// IsEqual compares two stages by their unique identifiers.
func (s *Stage) IsEqual(other *Stage) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the stage's unique identifier.
func (s *Stage) ID() kernel.UUID {
	return s.id
}

// DepartmentID returns the department responsible for this stage.
func (s *Stage) DepartmentID() kernel.UUID {
	return s.departmentID
}

// InOrder returns the stage's 1-based position in the order's pipeline.
func (s *Stage) InOrder() int {
	return s.inOrder
}

// IsActive reports whether the stage is the one currently eligible for work.
func (s *Stage) IsActive() bool {
	return s.isActive
}

// UserID returns the worker currently claiming the stage, nil if unclaimed.
func (s *Stage) UserID() *kernel.UUID {
	return s.userID
}

// BreakID returns the attributed defect reason, nil if none recorded.
func (s *Stage) BreakID() *kernel.UUID {
	return s.breakID
}

// activate and deactivate are private: only the owning Order may flip the
// activity flag, preserving the at-most-one-active invariant.
func (s *Stage) activate() {
	s.isActive = true
}

func (s *Stage) deactivate() {
	s.isActive = false
}

// claim assigns the worker to the stage, overwriting any previous claimant.
func (s *Stage) claim(userID kernel.UUID) {
	s.userID = &userID
}

// isClaimedBy reports whether the stage is currently claimed by the given worker.
func (s *Stage) isClaimedBy(userID kernel.UUID) bool {
	return s.userID != nil && s.userID.IsEqual(userID)
}

// setBreak records the defect attribution on this stage.
func (s *Stage) setBreak(breakID kernel.UUID) {
	s.breakID = &breakID
}

func (s *Stage) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stage) setDepartmentID(departmentID kernel.UUID) error {
	if err := departmentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("departmentID", err)
	}
	s.departmentID = departmentID
	return nil
}

func (s *Stage) setInOrder(inOrder int) error {
	if inOrder <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"inOrder is invalid",
			fmt.Errorf("%d is not a positive pipeline position", inOrder),
		)
	}
	s.inOrder = inOrder
	return nil
}
