package order

import (
	"errors"
	"fmt"
	"sort"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrDepartmentSequenceIsRequired is returned when an order is created
	// without a pipeline to move through.
	ErrDepartmentSequenceIsRequired = errors.New("order requires at least one pipeline department")
)

const (
	// MinRating and MaxRating bound the quality score an order can receive
	// once it reaches a terminal completed state.
	MinRating = 1
	MaxRating = 10
)

// Order represents a physical production order moving through an ordered
// sequence of work departments. It is the aggregate root owning the stage
// ledger, and it is the single place where the stage-progression invariants
// are enforced.
//
// Order maintains these invariants:
//   - the stage ledger holds exactly one stage per position 1..N, no gaps,
//     and the sequence is immutable after creation
//   - at most one stage is active at any point in time
//   - a stage advanced past never becomes active again; rework is modeled
//     via break attribution, not stage reactivation
//   - status and resource status only change through explicit operations
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// hiddenFrom remembers the status the order had before it was hidden,
	// Unknown while the order is visible
	hiddenFrom Status

	// resourceStatus tracks material readiness, independent of status
	resourceStatus ResourceStatus

	// resourceActorID records who last changed the resource status, for audit
	resourceActorID *kernel.UUID

	// rating is the optional quality score, set once terminal
	rating *int

	// stages is the ordered stage ledger, sorted by pipeline position
	stages []*Stage

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with its complete stage ledger. One stage is
// created per department, in the given pipeline order, all inactive. The
// order starts in New status with an unchecked (New) resource status.
//
// The department sequence is fixed for the lifetime of the order: stages are
// never inserted, removed or reordered afterwards.
func NewOrder(id kernel.UUID, departmentIDs []kernel.UUID) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(departmentIDs) == 0 {
		return nil, ErrDepartmentSequenceIsRequired
	}

	stages := make([]*Stage, 0, len(departmentIDs))
	for i, departmentID := range departmentIDs {
		stage, err := NewStage(kernel.NewUUID(), departmentID, i+1)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}

	return &Order{
		id:             id,
		status:         New,
		resourceStatus: ResourceNew,
		stages:         stages,
		isConstructed:  true,
	}, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// It re-validates every invariant so corrupt rows cannot produce an
// aggregate that would violate the single-active-stage guarantee.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	hiddenFrom Status,
	resourceStatus ResourceStatus,
	rating *int,
	resourceActorID *kernel.UUID,
	stages []*Stage,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		resourceStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if hiddenFrom != Unknown {
		if status != Hidden {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"hidden from",
				fmt.Errorf("prior status %s recorded for a visible order", hiddenFrom.String()),
			)
		}
		if hiddenFrom.Validate() != nil || hiddenFrom == Hidden {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"hidden from",
				fmt.Errorf("%d is not a restorable prior status", hiddenFrom),
			)
		}
	}

	if rating != nil && (*rating < MinRating || *rating > MaxRating) {
		return nil, errs.NewValueIsOutOfRangeError("rating", *rating, MinRating, MaxRating)
	}
	if resourceActorID != nil {
		if err := resourceActorID.Validate(); err != nil {
			return nil, err
		}
	}

	sorted := make([]*Stage, len(stages))
	copy(sorted, stages)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].InOrder() < sorted[j].InOrder()
	})

	if err := validateStageLedger(sorted); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		status:          status,
		hiddenFrom:      hiddenFrom,
		resourceStatus:  resourceStatus,
		rating:          rating,
		resourceActorID: resourceActorID,
		stages:          sorted,
		isConstructed:   true,
	}, nil
}

// validateStageLedger checks contiguity (positions exactly 1..N) and the
// at-most-one-active invariant on a ledger sorted by position.
func validateStageLedger(sorted []*Stage) error {
	if len(sorted) == 0 {
		return ErrDepartmentSequenceIsRequired
	}

	active := 0
	for i, stage := range sorted {
		if err := stage.Validate(); err != nil {
			return err
		}
		if stage.InOrder() != i+1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"stage ledger",
				fmt.Errorf("expected stage at position %d, found %d", i+1, stage.InOrder()),
			)
		}
		if stage.IsActive() {
			active++
		}
	}

	if active > 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage ledger",
			fmt.Errorf("%d stages are active, at most one is allowed", active),
		)
	}
	return nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct, and should be called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// HiddenFrom returns the status the order had before it was hidden,
// Unknown while the order is visible.
func (o *Order) HiddenFrom() Status {
	return o.hiddenFrom
}

// ResourceStatus returns the current material readiness signal.
func (o *Order) ResourceStatus() ResourceStatus {
	return o.resourceStatus
}

// ResourceActor returns who last changed the resource status, nil if never changed.
func (o *Order) ResourceActor() *kernel.UUID {
	return o.resourceActorID
}

// Rating returns the order's quality score, nil if not yet rated.
func (o *Order) Rating() *int {
	return o.rating
}

// Stages returns the stage ledger in pipeline order.
// The returned slice is a copy; the stages themselves are shared.
func (o *Order) Stages() []*Stage {
	stages := make([]*Stage, len(o.stages))
	copy(stages, o.stages)
	return stages
}

// Stage returns the stage with the given id, nil if not part of this order.
func (o *Order) Stage(stageID kernel.UUID) *Stage {
	for _, stage := range o.stages {
		if stage.ID().IsEqual(stageID) {
			return stage
		}
	}
	return nil
}

// ActiveStage returns the single currently active stage, nil if none.
func (o *Order) ActiveStage() *Stage {
	for _, stage := range o.stages {
		if stage.IsActive() {
			return stage
		}
	}
	return nil
}

// stageAt returns the stage at the given 1-based position, nil if out of range.
func (o *Order) stageAt(inOrder int) *Stage {
	if inOrder < 1 || inOrder > len(o.stages) {
		return nil
	}
	return o.stages[inOrder-1]
}

// ActivateFirstStage activates the stage at position 1, marking the order's
// entry into the pipeline. Fails with an invalid-state error if any stage of
// the order is already active.
func (o *Order) ActivateFirstStage() error {
	if active := o.ActiveStage(); active != nil {
		return errs.NewInvalidStateErrorWithCause(
			"order",
			fmt.Errorf("stage at position %d is already active", active.InOrder()),
		)
	}

	o.stages[0].activate()
	return nil
}

// ClaimStage assigns the worker to the active stage with the given id.
//
// The stage must exist in this order and be active; otherwise the claim is
// rejected with a not-found error (an inactive stage does not satisfy the
// lookup). An existing claim by a different worker is overwritten: a claim
// is a revocable assignment, not ownership, and reassignment is an explicit
// policy of this engine.
func (o *Order) ClaimStage(stageID kernel.UUID, userID kernel.UUID) (*Stage, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	stage := o.Stage(stageID)
	if stage == nil || !stage.IsActive() {
		return nil, errs.NewObjectNotFoundError("active order stage", stageID.String())
	}

	stage.claim(userID)
	return stage, nil
}

// AdvanceStage marks the active stage with the given id as done ("ready") on
// behalf of the worker claiming it, and moves the order forward.
//
// Preconditions:
//   - the stage exists in this order and is active (not-found error otherwise)
//   - the stage is claimed by userID (not-authorized error otherwise; only
//     the claiming worker may advance a stage)
//
// When a successor at position inOrder+1 exists, it is activated and the
// current stage deactivated in the same mutation; the caller persists both
// in one atomic update. When no successor exists the current stage is the
// last one: it is deactivated and the order completes. A missing successor
// is never interpreted as "skip ahead".
//
// Returns the finished stage and the newly activated stage, the latter nil
// when the order completed.
func (o *Order) AdvanceStage(stageID kernel.UUID, userID kernel.UUID) (*Stage, *Stage, error) {
	if err := userID.Validate(); err != nil {
		return nil, nil, err
	}

	stage := o.Stage(stageID)
	if stage == nil || !stage.IsActive() {
		return nil, nil, errs.NewObjectNotFoundError("active order stage", stageID.String())
	}
	if !stage.isClaimedBy(userID) {
		return nil, nil, errs.NewNotAuthorizedErrorWithCause(
			"stage claim",
			fmt.Errorf("stage %s is not claimed by user %s", stageID, userID),
		)
	}

	next := o.stageAt(stage.InOrder() + 1)
	if next == nil {
		newStatus, err := o.status.Complete()
		if err != nil {
			return nil, nil, err
		}
		stage.deactivate()
		o.status = newStatus
		return stage, nil, nil
	}

	next.activate()
	stage.deactivate()
	return stage, next, nil
}

// EligibleBreakDepartments returns the departments a defect found at the
// given stage may be attributed to: the stage's own department first, then
// the departments of every earlier stage walked backward from the immediate
// predecessor to the first stage. A department is eligible only if the order
// has already passed through it, which the backward walk guarantees.
func (o *Order) EligibleBreakDepartments(stageID kernel.UUID) ([]kernel.UUID, error) {
	stage := o.Stage(stageID)
	if stage == nil {
		return nil, errs.NewObjectNotFoundError("order stage", stageID.String())
	}

	departments := make([]kernel.UUID, 0, stage.InOrder())
	departments = append(departments, stage.DepartmentID())
	for pos := stage.InOrder() - 1; pos >= 1; pos-- {
		departments = append(departments, o.stageAt(pos).DepartmentID())
	}
	return departments, nil
}

// RecordBreak attributes a defect reason to the stage of the given
// department. The ledger is walked backward from the last stage so that,
// when the same department appears more than once in a pipeline, the
// occurrence latest in the pipeline wins: the one the eligibility walk
// would have reached first. Attribution is an annotation: it never changes
// stage activity or order status.
//
// Fails with a not-found error if no stage of this order belongs to the
// department, leaving the ledger unchanged.
func (o *Order) RecordBreak(departmentID kernel.UUID, breakID kernel.UUID) (*Stage, error) {
	if err := errors.Join(departmentID.Validate(), breakID.Validate()); err != nil {
		return nil, err
	}

	for pos := len(o.stages); pos >= 1; pos-- {
		stage := o.stageAt(pos)
		if stage.DepartmentID().IsEqual(departmentID) {
			stage.setBreak(breakID)
			return stage, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("order stage for department", departmentID.String())
}

// RecordBreakOnStage attributes a defect reason to a specific stage instance.
// Callers that resolved the target through EligibleBreakDepartments should
// prefer this over RecordBreak: passing the resolved stage through avoids
// re-querying by department, which is ambiguous when a department occurs
// more than once in a pipeline.
func (o *Order) RecordBreakOnStage(stageID kernel.UUID, breakID kernel.UUID) (*Stage, error) {
	if err := breakID.Validate(); err != nil {
		return nil, err
	}

	stage := o.Stage(stageID)
	if stage == nil {
		return nil, errs.NewObjectNotFoundError("order stage", stageID.String())
	}

	stage.setBreak(breakID)
	return stage, nil
}

// SetWork puts the order into work (New/Stop -> InWork).
//
// Material readiness is deliberately not checked here: the resource gate is
// advisory, and enforcement is a workflow policy outside this engine.
func (o *Order) SetWork() error {
	newStatus, err := o.status.SetWork()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// SetStop pauses work on the order (InWork -> Stop). The stage ledger is
// left untouched, so resuming continues from the same position.
func (o *Order) SetStop() error {
	newStatus, err := o.status.SetStop()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// CompleteReclamation marks a completed order as returned with a defect
// claim (Completed -> CompletedReclamation).
func (o *Order) CompleteReclamation() error {
	newStatus, err := o.status.CompleteReclamation()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Hide soft-deletes the order. The current status is remembered so a
// later Restore can bring the order back where it was.
func (o *Order) Hide() error {
	newStatus, err := o.status.Hide()
	if err != nil {
		return err
	}
	o.hiddenFrom = o.status
	o.status = newStatus
	return nil
}

// Restore un-hides a soft-deleted order, returning it to the status it
// had when it was hidden. The stage ledger was never touched by Hide, so
// work resumes from the same position.
func (o *Order) Restore() error {
	newStatus, err := o.status.Restore(o.hiddenFrom)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.hiddenFrom = Unknown
	return nil
}

// SetRating records the order's quality score. The order must be in a
// terminal completed state and not rated yet; the score must fall within
// [MinRating, MaxRating].
func (o *Order) SetRating(rating int) error {
	if !o.status.CanRate() {
		return errs.NewInvalidStateErrorWithCause(
			"order",
			fmt.Errorf("%s is not a valid status to rate", o.status.String()),
		)
	}
	if o.rating != nil {
		return errs.NewInvalidStateErrorWithCause(
			"order",
			fmt.Errorf("rating is already set to %d", *o.rating),
		)
	}
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	o.rating = &rating
	return nil
}

// SetResourceStatus records a material readiness check made by the acting
// user. The setter is unconditional between valid values: readiness is not
// monotonic, a re-check may move Enough back to NotEnough.
func (o *Order) SetResourceStatus(status ResourceStatus, actingUserID kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := actingUserID.Validate(); err != nil {
		return err
	}

	o.resourceStatus = status
	o.resourceActorID = &actingUserID
	return nil
}
