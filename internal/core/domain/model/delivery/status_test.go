package delivery_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []delivery.Status{
			delivery.StatusPending,
			delivery.StatusInTransit,
			delivery.StatusDelivered,
			delivery.StatusPartiallyDelivered,
			delivery.StatusCancelled,
		} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		require.ErrorIs(t, delivery.StatusUnknown.Validate(), errs.ErrValueIsInvalid)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	allStatuses := []delivery.Status{
		delivery.StatusPending,
		delivery.StatusInTransit,
		delivery.StatusDelivered,
		delivery.StatusPartiallyDelivered,
		delivery.StatusCancelled,
	}

	allowed := map[delivery.Status][]delivery.Status{
		delivery.StatusPending: {
			delivery.StatusInTransit,
			delivery.StatusCancelled,
		},
		delivery.StatusInTransit: {
			delivery.StatusDelivered,
			delivery.StatusPartiallyDelivered,
			delivery.StatusCancelled,
		},
		delivery.StatusPartiallyDelivered: {
			delivery.StatusDelivered,
			delivery.StatusCancelled,
		},
		delivery.StatusDelivered: {},
		delivery.StatusCancelled: {},
	}

	for from, targets := range allowed {
		allowedSet := make(map[delivery.Status]bool, len(targets))
		for _, to := range targets {
			allowedSet[to] = true
		}

		for _, to := range allStatuses {
			t.Run(from.String()+" to "+to.String(), func(t *testing.T) {
				assert.Equal(t, allowedSet[to], from.CanTransitionTo(to))
			})
		}
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("legal transition returns the target", func(t *testing.T) {
		next, err := delivery.StatusPending.TransitionTo(delivery.StatusInTransit)

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusInTransit, next)
	})

	t.Run("illegal transition fails and names both states", func(t *testing.T) {
		_, err := delivery.StatusDelivered.TransitionTo(delivery.StatusInTransit)

		require.ErrorIs(t, err, errs.ErrIllegalStateTransition)
		assert.Contains(t, err.Error(), "Delivered")
		assert.Contains(t, err.Error(), "InTransit")
	})

	t.Run("invalid target fails validation", func(t *testing.T) {
		_, err := delivery.StatusPending.TransitionTo(delivery.StatusUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, delivery.StatusDelivered.IsTerminal())
	assert.True(t, delivery.StatusCancelled.IsTerminal())
	assert.False(t, delivery.StatusPending.IsTerminal())
	assert.False(t, delivery.StatusInTransit.IsTerminal())
	assert.False(t, delivery.StatusPartiallyDelivered.IsTerminal())
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, delivery.StatusPending.IsActive())
	assert.True(t, delivery.StatusInTransit.IsActive())
	assert.True(t, delivery.StatusPartiallyDelivered.IsActive())
	assert.False(t, delivery.StatusDelivered.IsActive())
	assert.False(t, delivery.StatusCancelled.IsActive())
}

func TestItemStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []delivery.ItemStatus{
			delivery.ItemStatusPending,
			delivery.ItemStatusDelivered,
			delivery.ItemStatusRejected,
		} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		require.ErrorIs(t, delivery.ItemStatusUnknown.Validate(), errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", delivery.StatusPending.String())
	assert.Equal(t, "InTransit", delivery.StatusInTransit.String())
	assert.Equal(t, "Delivered", delivery.StatusDelivered.String())
	assert.Equal(t, "PartiallyDelivered", delivery.StatusPartiallyDelivered.String())
	assert.Equal(t, "Cancelled", delivery.StatusCancelled.String())
	assert.Equal(t, "Unknown", delivery.StatusUnknown.String())
}
