package order_test

import (
	"errors"
	"testing"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Pending,
		order.ConsultationScheduled,
		order.ConsultationCompleted,
		order.FabricSelected,
		order.InProgress,
		order.QualityCheck,
		order.Completed,
		order.Cancelled,
		order.RevisionRequested,
	}
}

func TestStatusString(t *testing.T) {
	tests := map[order.Status]string{
		order.Unknown:               "unknown",
		order.Pending:               "pending",
		order.ConsultationScheduled: "consultation_scheduled",
		order.ConsultationCompleted: "consultation_completed",
		order.FabricSelected:        "fabric_selected",
		order.InProgress:            "in_progress",
		order.QualityCheck:          "quality_check",
		order.Completed:             "completed",
		order.Cancelled:             "cancelled",
		order.RevisionRequested:     "revision_requested",
	}

	for status, want := range tests {
		assert.Equal(t, want, status.String())
	}

	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every defined status", func(t *testing.T) {
		for _, s := range allStatuses() {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should fail for unknown name", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})

	t.Run("should not parse the zero status", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")
		require.Error(t, err)
	})
}

func TestStatusValidate(t *testing.T) {
	for _, s := range allStatuses() {
		assert.NoError(t, s.Validate())
	}
	assert.Error(t, order.Unknown.Validate())
	assert.Error(t, order.Status(99).Validate())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	for _, s := range allStatuses() {
		if s == order.Completed || s == order.Cancelled {
			continue
		}
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatusTransitions(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Pending:               {order.ConsultationScheduled, order.Cancelled},
		order.ConsultationScheduled: {order.ConsultationCompleted, order.Cancelled},
		order.ConsultationCompleted: {order.FabricSelected, order.Cancelled},
		order.FabricSelected:        {order.InProgress, order.Cancelled},
		order.InProgress:            {order.QualityCheck, order.RevisionRequested},
		order.RevisionRequested:     {order.InProgress},
		order.QualityCheck:          {order.Completed, order.RevisionRequested},
		order.Completed:             {},
		order.Cancelled:             {},
	}

	t.Run("should permit exactly the listed pairs", func(t *testing.T) {
		for _, from := range allStatuses() {
			for _, to := range allStatuses() {
				want := false
				for _, a := range allowed[from] {
					if a == to {
						want = true
					}
				}
				got := from.CanTransitionTo(to)
				assert.Equal(t, want, got, "%s -> %s", from, to)
			}
		}
	})

	t.Run("should return target on legal transition", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.ConsultationScheduled)
		require.NoError(t, err)
		assert.Equal(t, order.ConsultationScheduled, next)
	})

	t.Run("should fail with InvalidTransition on illegal move", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.Completed)
		require.Error(t, err)
		assert.Equal(t, order.Unknown, next)
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
		assert.Contains(t, err.Error(), "order cannot go from pending to completed")
	})

	t.Run("should fail for invalid target value", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})

	t.Run("should not leave terminal statuses", func(t *testing.T) {
		for _, to := range allStatuses() {
			_, err := order.Completed.TransitionTo(to)
			assert.Error(t, err, to.String())
			_, err = order.Cancelled.TransitionTo(to)
			assert.Error(t, err, to.String())
		}
	})

	t.Run("should not allow self transition", func(t *testing.T) {
		for _, s := range allStatuses() {
			assert.False(t, s.CanTransitionTo(s), s.String())
		}
	})
}
