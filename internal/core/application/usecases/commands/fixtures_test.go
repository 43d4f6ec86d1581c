package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testMoney(t *testing.T) kernel.Money {
	t.Helper()

	m, err := kernel.MoneyFromString("7.25", "USD")
	require.NoError(t, err)
	return m
}

// testOrder builds an order with one approved 10-unit line and returns both.
func testOrder(t *testing.T, buyerID, supplierID kernel.UUID) (*order.Order, *order.Item) {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 10, testMoney(t), "", nil)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), buyerID, supplierID, []*order.Item{item})
	require.NoError(t, err)
	require.NoError(t, o.SetItemStatus(item.ID(), order.ItemStatusApproved))

	return o, item
}

func testDeliveryItem(t *testing.T, quantity int) *delivery.Item {
	t.Helper()

	item, err := delivery.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), quantity,
		delivery.DirectOrigin(), testMoney(t), "", nil,
	)
	require.NoError(t, err)
	return item
}

func testPendingDelivery(t *testing.T, supplierID, buyerID kernel.UUID, items ...*delivery.Item) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), nil, supplierID, buyerID,
		time.Now().Add(48*time.Hour), items, time.Now(),
	)
	require.NoError(t, err)
	return d
}

func testInTransitDelivery(t *testing.T, supplierID, buyerID kernel.UUID, items ...*delivery.Item) *delivery.Delivery {
	t.Helper()

	d := testPendingDelivery(t, supplierID, buyerID, items...)
	require.NoError(t, d.Dispatch(time.Now(), "DHL", "JD014600003"))
	return d
}
