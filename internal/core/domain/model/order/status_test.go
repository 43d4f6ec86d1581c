package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.ItemStatus{
			order.ItemStatusPending,
			order.ItemStatusApproved,
			order.ItemStatusRejected,
		} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		require.ErrorIs(t, order.ItemStatusUnknown.Validate(), errs.ErrValueIsInvalid)
	})
}

func TestItemStatus_IsDecision(t *testing.T) {
	assert.False(t, order.ItemStatusPending.IsDecision())
	assert.True(t, order.ItemStatusApproved.IsDecision())
	assert.True(t, order.ItemStatusRejected.IsDecision())
	assert.False(t, order.ItemStatusUnknown.IsDecision())
}

func TestItemStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.ItemStatusPending.String())
	assert.Equal(t, "Approved", order.ItemStatusApproved.String())
	assert.Equal(t, "Rejected", order.ItemStatusRejected.String())
	assert.Equal(t, "Unknown", order.ItemStatusUnknown.String())
}

func TestDeriveOverallStatus(t *testing.T) {
	p := order.ItemStatusPending
	a := order.ItemStatusApproved
	r := order.ItemStatusRejected

	testCases := []struct {
		name     string
		statuses []order.ItemStatus
		expected order.OverallStatus
	}{
		{"no items", nil, order.OverallStatusNotYet},
		{"all pending", []order.ItemStatus{p, p}, order.OverallStatusNotYet},
		{"some rejected rest pending", []order.ItemStatus{r, p}, order.OverallStatusNotYet},
		{"all rejected", []order.ItemStatus{r, r, r}, order.OverallStatusRejected},
		{"single rejected", []order.ItemStatus{r}, order.OverallStatusRejected},
		{"all approved", []order.ItemStatus{a, a}, order.OverallStatusAllApproved},
		{"single approved", []order.ItemStatus{a}, order.OverallStatusAllApproved},
		{"approved and pending", []order.ItemStatus{a, p}, order.OverallStatusSomeApproved},
		{"approved and rejected", []order.ItemStatus{a, r}, order.OverallStatusSomeApproved},
		{"approved rejected pending", []order.ItemStatus{a, r, p}, order.OverallStatusSomeApproved},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, order.DeriveOverallStatus(tc.statuses))
		})
	}
}

func TestOverallStatus_HasApprovals(t *testing.T) {
	assert.False(t, order.OverallStatusNotYet.HasApprovals())
	assert.False(t, order.OverallStatusRejected.HasApprovals())
	assert.True(t, order.OverallStatusSomeApproved.HasApprovals())
	assert.True(t, order.OverallStatusAllApproved.HasApprovals())
}

func TestOverallStatus_String(t *testing.T) {
	assert.Equal(t, "NotYet", order.OverallStatusNotYet.String())
	assert.Equal(t, "Rejected", order.OverallStatusRejected.String())
	assert.Equal(t, "SomeApproved", order.OverallStatusSomeApproved.String())
	assert.Equal(t, "AllApproved", order.OverallStatusAllApproved.String())
	assert.Equal(t, "Unknown", order.OverallStatus(0).String())
}
