package order_test

import (
	"testing"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPipelineOrder creates an order moving through n departments and returns
// the order together with the department sequence.
func newPipelineOrder(t *testing.T, n int) (*order.Order, []kernel.UUID) {
	t.Helper()

	departments := make([]kernel.UUID, 0, n)
	for i := 0; i < n; i++ {
		departments = append(departments, kernel.NewUUID())
	}

	o, err := order.NewOrder(kernel.NewUUID(), departments)
	require.NoError(t, err)
	return o, departments
}

// activeStageCount counts active stages; the engine must keep this at 0 or 1.
func activeStageCount(o *order.Order) int {
	count := 0
	for _, s := range o.Stages() {
		if s.IsActive() {
			count++
		}
	}
	return count
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with complete inactive stage ledger", func(t *testing.T) {
		o, departments := newPipelineOrder(t, 3)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.New, o.Status())
		assert.Equal(t, order.ResourceNew, o.ResourceStatus())
		assert.Nil(t, o.Rating())
		assert.Nil(t, o.ResourceActor())

		stages := o.Stages()
		require.Len(t, stages, 3)
		for i, s := range stages {
			assert.Equal(t, i+1, s.InOrder())
			assert.True(t, s.DepartmentID().IsEqual(departments[i]))
			assert.False(t, s.IsActive())
			assert.Nil(t, s.UserID())
			assert.Nil(t, s.BreakID())
		}
		assert.Equal(t, 0, activeStageCount(o))
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, []kernel.UUID{kernel.NewUUID()})

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail without departments", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), nil)

		require.ErrorIs(t, err, order.ErrDepartmentSequenceIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should fail with invalid department ID", func(t *testing.T) {
		var invalidDepartment kernel.UUID

		o, err := order.NewOrder(kernel.NewUUID(), []kernel.UUID{invalidDepartment})

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)
		require.NoError(t, o.Validate())
	})

	t.Run("zero value order is invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ActivateFirstStage(t *testing.T) {
	t.Run("activates stage at position 1", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 3)

		require.NoError(t, o.ActivateFirstStage())

		active := o.ActiveStage()
		require.NotNil(t, active)
		assert.Equal(t, 1, active.InOrder())
		assert.Equal(t, 1, activeStageCount(o))
	})

	t.Run("fails when a stage is already active", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 3)
		require.NoError(t, o.ActivateFirstStage())

		err := o.ActivateFirstStage()

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, 1, activeStageCount(o))
	})

	t.Run("fails after the pipeline moved past the first stage", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 2)
		worker := kernel.NewUUID()
		require.NoError(t, o.SetWork())
		require.NoError(t, o.ActivateFirstStage())
		first := o.ActiveStage()
		_, err := o.ClaimStage(first.ID(), worker)
		require.NoError(t, err)
		_, _, err = o.AdvanceStage(first.ID(), worker)
		require.NoError(t, err)

		require.ErrorIs(t, o.ActivateFirstStage(), errs.ErrInvalidState)
	})
}

func TestOrder_ClaimStage(t *testing.T) {
	t.Run("claims the active stage", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 2)
		require.NoError(t, o.ActivateFirstStage())
		worker := kernel.NewUUID()

		stage, err := o.ClaimStage(o.ActiveStage().ID(), worker)

		require.NoError(t, err)
		require.NotNil(t, stage.UserID())
		assert.True(t, stage.UserID().IsEqual(worker))
	})

	t.Run("fails on an inactive stage", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 2)
		require.NoError(t, o.ActivateFirstStage())
		inactive := o.Stages()[1]

		_, err := o.ClaimStage(inactive.ID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, inactive.UserID())
	})

	t.Run("fails on a stage of another order", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)
		require.NoError(t, o.ActivateFirstStage())

		_, err := o.ClaimStage(kernel.NewUUID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("overwrites an existing claim by another worker", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)
		require.NoError(t, o.ActivateFirstStage())
		stageID := o.ActiveStage().ID()
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		_, err := o.ClaimStage(stageID, first)
		require.NoError(t, err)
		stage, err := o.ClaimStage(stageID, second)
		require.NoError(t, err)

		assert.True(t, stage.UserID().IsEqual(second))
	})

	t.Run("is idempotent under repeated identical claims", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)
		require.NoError(t, o.ActivateFirstStage())
		stageID := o.ActiveStage().ID()
		worker := kernel.NewUUID()

		_, err := o.ClaimStage(stageID, worker)
		require.NoError(t, err)
		stage, err := o.ClaimStage(stageID, worker)
		require.NoError(t, err)

		assert.True(t, stage.UserID().IsEqual(worker))
	})
}

func TestOrder_AdvanceStage(t *testing.T) {
	t.Run("walks a three stage pipeline to completion", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 3)
		u1 := kernel.NewUUID()
		u2 := kernel.NewUUID()

		require.NoError(t, o.SetWork())
		require.NoError(t, o.ActivateFirstStage())

		// Stage 1 claimed and finished by U1.
		stage1 := o.ActiveStage()
		_, err := o.ClaimStage(stage1.ID(), u1)
		require.NoError(t, err)
		finished, next, err := o.AdvanceStage(stage1.ID(), u1)
		require.NoError(t, err)
		assert.False(t, finished.IsActive())
		require.NotNil(t, next)
		assert.Equal(t, 2, next.InOrder())
		assert.True(t, next.IsActive())
		assert.Equal(t, order.InWork, o.Status())
		assert.Equal(t, 1, activeStageCount(o))

		// A different worker may not advance U2's claimed stage.
		_, err = o.ClaimStage(next.ID(), u2)
		require.NoError(t, err)
		_, _, err = o.AdvanceStage(next.ID(), u1)
		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.True(t, next.IsActive())

		// Stage 2 finished by its claimant.
		_, next3, err := o.AdvanceStage(next.ID(), u2)
		require.NoError(t, err)
		require.NotNil(t, next3)
		assert.Equal(t, 3, next3.InOrder())

		// Final stage completes the order and leaves nothing active.
		_, err = o.ClaimStage(next3.ID(), u2)
		require.NoError(t, err)
		finished, last, err := o.AdvanceStage(next3.ID(), u2)
		require.NoError(t, err)
		assert.Nil(t, last)
		assert.False(t, finished.IsActive())
		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, 0, activeStageCount(o))
	})

	t.Run("changes no other stage's activity", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 4)
		worker := kernel.NewUUID()
		require.NoError(t, o.SetWork())
		require.NoError(t, o.ActivateFirstStage())
		stage1 := o.ActiveStage()
		_, err := o.ClaimStage(stage1.ID(), worker)
		require.NoError(t, err)

		_, _, err = o.AdvanceStage(stage1.ID(), worker)
		require.NoError(t, err)

		stages := o.Stages()
		assert.False(t, stages[0].IsActive())
		assert.True(t, stages[1].IsActive())
		assert.False(t, stages[2].IsActive())
		assert.False(t, stages[3].IsActive())
	})

	t.Run("fails on an inactive stage", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 2)
		require.NoError(t, o.SetWork())
		require.NoError(t, o.ActivateFirstStage())
		inactive := o.Stages()[1]

		_, _, err := o.AdvanceStage(inactive.ID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("fails on an unclaimed stage", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 2)
		require.NoError(t, o.SetWork())
		require.NoError(t, o.ActivateFirstStage())

		_, _, err := o.AdvanceStage(o.ActiveStage().ID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("second advance of the same stage observes the moved state", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 2)
		worker := kernel.NewUUID()
		require.NoError(t, o.SetWork())
		require.NoError(t, o.ActivateFirstStage())
		stage1 := o.ActiveStage()
		_, err := o.ClaimStage(stage1.ID(), worker)
		require.NoError(t, err)
		_, _, err = o.AdvanceStage(stage1.ID(), worker)
		require.NoError(t, err)

		_, _, err = o.AdvanceStage(stage1.ID(), worker)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, 1, activeStageCount(o))
	})
}

func TestOrder_EligibleBreakDepartments(t *testing.T) {
	t.Run("returns own department then predecessors in descending order", func(t *testing.T) {
		o, departments := newPipelineOrder(t, 3)
		stage3 := o.Stages()[2]

		eligible, err := o.EligibleBreakDepartments(stage3.ID())

		require.NoError(t, err)
		require.Len(t, eligible, 3)
		assert.True(t, eligible[0].IsEqual(departments[2]))
		assert.True(t, eligible[1].IsEqual(departments[1]))
		assert.True(t, eligible[2].IsEqual(departments[0]))
	})

	t.Run("first stage is eligible only for itself", func(t *testing.T) {
		o, departments := newPipelineOrder(t, 3)
		stage1 := o.Stages()[0]

		eligible, err := o.EligibleBreakDepartments(stage1.ID())

		require.NoError(t, err)
		require.Len(t, eligible, 1)
		assert.True(t, eligible[0].IsEqual(departments[0]))
	})

	t.Run("returns exactly k departments for the stage at position k", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 5)
		for k, stage := range o.Stages() {
			eligible, err := o.EligibleBreakDepartments(stage.ID())
			require.NoError(t, err)
			assert.Len(t, eligible, k+1)
		}
	})

	t.Run("fails for a stage of another order", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 2)

		_, err := o.EligibleBreakDepartments(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_RecordBreak(t *testing.T) {
	t.Run("annotates the stage of the given department", func(t *testing.T) {
		o, departments := newPipelineOrder(t, 3)
		require.NoError(t, o.ActivateFirstStage())
		breakID := kernel.NewUUID()

		stage, err := o.RecordBreak(departments[1], breakID)

		require.NoError(t, err)
		assert.Equal(t, 2, stage.InOrder())
		require.NotNil(t, stage.BreakID())
		assert.True(t, stage.BreakID().IsEqual(breakID))

		// Attribution is an annotation: activity is untouched.
		assert.Equal(t, 1, activeStageCount(o))
		assert.True(t, o.Stages()[0].IsActive())
		assert.Equal(t, order.New, o.Status())
	})

	t.Run("fails for a department absent from the ledger", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 3)

		_, err := o.RecordBreak(kernel.NewUUID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		for _, s := range o.Stages() {
			assert.Nil(t, s.BreakID())
		}
	})

	t.Run("resolves the latest occurrence of a duplicated department", func(t *testing.T) {
		departmentA := kernel.NewUUID()
		departmentB := kernel.NewUUID()
		o, err := order.NewOrder(kernel.NewUUID(), []kernel.UUID{departmentA, departmentB, departmentA})
		require.NoError(t, err)
		breakID := kernel.NewUUID()

		stage, err := o.RecordBreak(departmentA, breakID)

		require.NoError(t, err)
		assert.Equal(t, 3, stage.InOrder())
		assert.Nil(t, o.Stages()[0].BreakID())
	})

	t.Run("records by stage identity when the caller resolved the stage", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 3)
		target := o.Stages()[0]
		breakID := kernel.NewUUID()

		stage, err := o.RecordBreakOnStage(target.ID(), breakID)

		require.NoError(t, err)
		assert.True(t, stage.IsEqual(target))
		require.NotNil(t, stage.BreakID())
		assert.True(t, stage.BreakID().IsEqual(breakID))
	})

	t.Run("fails by stage identity for an unknown stage", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)

		_, err := o.RecordBreakOnStage(kernel.NewUUID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_StatusTransitions(t *testing.T) {
	t.Run("set work from new and from stop", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)

		require.NoError(t, o.SetWork())
		assert.Equal(t, order.InWork, o.Status())

		require.NoError(t, o.SetStop())
		assert.Equal(t, order.Stop, o.Status())

		require.NoError(t, o.SetWork())
		assert.Equal(t, order.InWork, o.Status())
	})

	t.Run("set work is rejected for a completed order", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)
		worker := kernel.NewUUID()
		require.NoError(t, o.SetWork())
		require.NoError(t, o.ActivateFirstStage())
		_, err := o.ClaimStage(o.ActiveStage().ID(), worker)
		require.NoError(t, err)
		_, _, err = o.AdvanceStage(o.Stages()[0].ID(), worker)
		require.NoError(t, err)
		require.Equal(t, order.Completed, o.Status())

		require.ErrorIs(t, o.SetWork(), errs.ErrInvalidState)
	})

	t.Run("stop requires in work", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)
		require.ErrorIs(t, o.SetStop(), errs.ErrInvalidState)
	})

	t.Run("reclamation requires completed", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)
		require.ErrorIs(t, o.CompleteReclamation(), errs.ErrInvalidState)
	})

	t.Run("hide rejects an already hidden order", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)

		require.NoError(t, o.Hide())
		assert.Equal(t, order.Hidden, o.Status())
		require.ErrorIs(t, o.Hide(), errs.ErrInvalidState)
		require.ErrorIs(t, o.SetWork(), errs.ErrInvalidState)
	})

	t.Run("restore returns a hidden order to its prior status", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 2)
		require.NoError(t, o.SetWork())
		require.NoError(t, o.ActivateFirstStage())
		require.NoError(t, o.SetStop())
		require.NoError(t, o.Hide())
		assert.Equal(t, order.Stop, o.HiddenFrom())

		require.NoError(t, o.Restore())

		assert.Equal(t, order.Stop, o.Status())
		assert.Equal(t, order.Unknown, o.HiddenFrom())
		require.NotNil(t, o.ActiveStage())
		assert.Equal(t, 1, o.ActiveStage().InOrder())
	})

	t.Run("restore requires a hidden order", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)

		require.ErrorIs(t, o.Restore(), errs.ErrInvalidState)
	})

	t.Run("advancing the last stage of a stopped order completes it", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)
		worker := kernel.NewUUID()
		require.NoError(t, o.SetWork())
		require.NoError(t, o.ActivateFirstStage())
		_, err := o.ClaimStage(o.ActiveStage().ID(), worker)
		require.NoError(t, err)
		require.NoError(t, o.SetStop())

		finished, next, err := o.AdvanceStage(o.Stages()[0].ID(), worker)

		require.NoError(t, err)
		assert.Nil(t, next)
		assert.False(t, finished.IsActive())
		assert.Equal(t, order.Completed, o.Status())
		assert.Nil(t, o.ActiveStage())
	})
}

func TestOrder_SetRating(t *testing.T) {
	completedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, _ := newPipelineOrder(t, 1)
		worker := kernel.NewUUID()
		require.NoError(t, o.SetWork())
		require.NoError(t, o.ActivateFirstStage())
		_, err := o.ClaimStage(o.Stages()[0].ID(), worker)
		require.NoError(t, err)
		_, _, err = o.AdvanceStage(o.Stages()[0].ID(), worker)
		require.NoError(t, err)
		return o
	}

	t.Run("rates a completed order once", func(t *testing.T) {
		o := completedOrder(t)

		require.NoError(t, o.SetRating(8))
		require.NotNil(t, o.Rating())
		assert.Equal(t, 8, *o.Rating())

		require.ErrorIs(t, o.SetRating(9), errs.ErrInvalidState)
		assert.Equal(t, 8, *o.Rating())
	})

	t.Run("rejects rating before completion", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)
		require.ErrorIs(t, o.SetRating(5), errs.ErrInvalidState)
	})

	t.Run("rejects out of range rating", func(t *testing.T) {
		o := completedOrder(t)

		require.ErrorIs(t, o.SetRating(0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, o.SetRating(order.MaxRating+1), errs.ErrValueIsOutOfRange)
		assert.Nil(t, o.Rating())
	})
}

func TestOrder_SetResourceStatus(t *testing.T) {
	t.Run("records status and acting user", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)
		actor := kernel.NewUUID()

		require.NoError(t, o.SetResourceStatus(order.ResourceEnough, actor))

		assert.Equal(t, order.ResourceEnough, o.ResourceStatus())
		require.NotNil(t, o.ResourceActor())
		assert.True(t, o.ResourceActor().IsEqual(actor))
	})

	t.Run("readiness is not monotonic", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)
		actor := kernel.NewUUID()

		require.NoError(t, o.SetResourceStatus(order.ResourceEnough, actor))
		require.NoError(t, o.SetResourceStatus(order.ResourceNotEnough, actor))

		assert.Equal(t, order.ResourceNotEnough, o.ResourceStatus())
	})

	t.Run("null is distinct from not enough", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)

		require.NoError(t, o.SetResourceStatus(order.ResourceNull, kernel.NewUUID()))

		assert.Equal(t, order.ResourceNull, o.ResourceStatus())
	})

	t.Run("rejects an invalid status value", func(t *testing.T) {
		o, _ := newPipelineOrder(t, 1)

		err := o.SetResourceStatus(order.ResourceUnknown, kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.ResourceNew, o.ResourceStatus())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round trips an in-flight order", func(t *testing.T) {
		departmentA := kernel.NewUUID()
		departmentB := kernel.NewUUID()
		worker := kernel.NewUUID()
		stage1, err := order.RestoreStage(kernel.NewUUID(), departmentA, 1, false, &worker, nil)
		require.NoError(t, err)
		stage2, err := order.RestoreStage(kernel.NewUUID(), departmentB, 2, true, nil, nil)
		require.NoError(t, err)

		// Stages intentionally out of order: restore must sort by position.
		o, err := order.RestoreOrder(
			kernel.NewUUID(), order.InWork, order.Unknown, order.ResourceEnough, nil, &worker,
			[]*order.Stage{stage2, stage1},
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		stages := o.Stages()
		assert.Equal(t, 1, stages[0].InOrder())
		assert.Equal(t, 2, stages[1].InOrder())
		require.NotNil(t, o.ActiveStage())
		assert.Equal(t, 2, o.ActiveStage().InOrder())
	})

	t.Run("rejects a gapped stage ledger", func(t *testing.T) {
		stage1, err := order.RestoreStage(kernel.NewUUID(), kernel.NewUUID(), 1, false, nil, nil)
		require.NoError(t, err)
		stage3, err := order.RestoreStage(kernel.NewUUID(), kernel.NewUUID(), 3, false, nil, nil)
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), order.New, order.Unknown, order.ResourceNew, nil, nil,
			[]*order.Stage{stage1, stage3},
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects more than one active stage", func(t *testing.T) {
		stage1, err := order.RestoreStage(kernel.NewUUID(), kernel.NewUUID(), 1, true, nil, nil)
		require.NoError(t, err)
		stage2, err := order.RestoreStage(kernel.NewUUID(), kernel.NewUUID(), 2, true, nil, nil)
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), order.InWork, order.Unknown, order.ResourceNew, nil, nil,
			[]*order.Stage{stage1, stage2},
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		stage1, err := order.RestoreStage(kernel.NewUUID(), kernel.NewUUID(), 1, false, nil, nil)
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), order.Unknown, order.Unknown, order.ResourceNew, nil, nil,
			[]*order.Stage{stage1},
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("round trips the pre-hide status", func(t *testing.T) {
		stage1, err := order.RestoreStage(kernel.NewUUID(), kernel.NewUUID(), 1, true, nil, nil)
		require.NoError(t, err)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), order.Hidden, order.Stop, order.ResourceNew, nil, nil,
			[]*order.Stage{stage1},
		)

		require.NoError(t, err)
		assert.Equal(t, order.Stop, o.HiddenFrom())
		require.NoError(t, o.Restore())
		assert.Equal(t, order.Stop, o.Status())
	})

	t.Run("rejects a prior status on a visible order", func(t *testing.T) {
		stage1, err := order.RestoreStage(kernel.NewUUID(), kernel.NewUUID(), 1, false, nil, nil)
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), order.New, order.Stop, order.ResourceNew, nil, nil,
			[]*order.Stage{stage1},
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
