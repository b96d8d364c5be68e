package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextDeliveryStatus(t *testing.T) {
	next, ok := NextDeliveryStatus(DeliveryStatusPending)
	assert.True(t, ok)
	assert.Equal(t, DeliveryStatusScheduled, next)

	next, ok = NextDeliveryStatus(DeliveryStatusScheduled)
	assert.True(t, ok)
	assert.Equal(t, DeliveryStatusInTransit, next)

	next, ok = NextDeliveryStatus(DeliveryStatusInTransit)
	assert.True(t, ok)
	assert.Equal(t, DeliveryStatusDelivered, next)

	_, ok = NextDeliveryStatus(DeliveryStatusDelivered)
	assert.False(t, ok, "delivered is terminal")

	_, ok = NextDeliveryStatus("bogus")
	assert.False(t, ok)
}

func TestMatch_AdvanceDelivery(t *testing.T) {
	t.Run("FullProgression", func(t *testing.T) {
		m := &Match{ID: "m1", Status: MatchStatusPending, DeliveryStatus: DeliveryStatusPending}

		assert.NoError(t, m.AdvanceDelivery(DeliveryStatusScheduled))
		assert.Equal(t, MatchStatusConfirmed, m.Status)

		assert.NoError(t, m.AdvanceDelivery(DeliveryStatusInTransit))
		assert.Equal(t, MatchStatusInProgress, m.Status)

		assert.NoError(t, m.AdvanceDelivery(DeliveryStatusDelivered))
		assert.Equal(t, MatchStatusCompleted, m.Status)
	})

	t.Run("SkippingStepRejected", func(t *testing.T) {
		m := &Match{ID: "m1", Status: MatchStatusPending, DeliveryStatus: DeliveryStatusPending}
		err := m.AdvanceDelivery(DeliveryStatusDelivered)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, DeliveryStatusPending, m.DeliveryStatus)
		assert.Equal(t, MatchStatusPending, m.Status)
	})

	t.Run("RepeatingStepRejected", func(t *testing.T) {
		m := &Match{ID: "m1", Status: MatchStatusConfirmed, DeliveryStatus: DeliveryStatusScheduled}
		err := m.AdvanceDelivery(DeliveryStatusScheduled)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("TerminalStaysTerminal", func(t *testing.T) {
		m := &Match{ID: "m1", Status: MatchStatusCompleted, DeliveryStatus: DeliveryStatusDelivered}
		err := m.AdvanceDelivery(DeliveryStatusDelivered)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, MatchStatusCompleted, m.Status)
	})

	t.Run("CancelledMatchCannotAdvance", func(t *testing.T) {
		m := &Match{ID: "m1", Status: MatchStatusCancelled, DeliveryStatus: DeliveryStatusPending}
		err := m.AdvanceDelivery(DeliveryStatusScheduled)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestMatch_Cancel(t *testing.T) {
	t.Run("BeforeTransit", func(t *testing.T) {
		m := &Match{ID: "m1", Status: MatchStatusConfirmed, DeliveryStatus: DeliveryStatusScheduled}
		assert.NoError(t, m.Cancel())
		assert.Equal(t, MatchStatusCancelled, m.Status)
		assert.False(t, m.Active())
	})

	t.Run("InTransitRejected", func(t *testing.T) {
		m := &Match{ID: "m1", Status: MatchStatusInProgress, DeliveryStatus: DeliveryStatusInTransit}
		err := m.Cancel()
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.True(t, m.Active())
	})

	t.Run("DeliveredRejected", func(t *testing.T) {
		m := &Match{ID: "m1", Status: MatchStatusCompleted, DeliveryStatus: DeliveryStatusDelivered}
		assert.ErrorIs(t, m.Cancel(), ErrInvalidTransition)
	})

	t.Run("AlreadyCancelledRejected", func(t *testing.T) {
		m := &Match{ID: "m1", Status: MatchStatusCancelled, DeliveryStatus: DeliveryStatusPending}
		assert.ErrorIs(t, m.Cancel(), ErrInvalidTransition)
	})
}
