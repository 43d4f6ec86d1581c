package stock_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUnitCost(t *testing.T) kernel.Money {
	t.Helper()

	cost, err := kernel.NewMoney(decimal.NewFromFloat(3.25), "USD")
	require.NoError(t, err)
	return cost
}

func TestNewReceipt(t *testing.T) {
	now := time.Now()

	t.Run("should create receipt", func(t *testing.T) {
		expiry := now.AddDate(1, 0, 0)

		receipt, err := stock.NewReceipt(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			25, testUnitCost(t), "BATCH-7", &expiry, now,
		)

		require.NoError(t, err)
		require.NoError(t, receipt.Validate())
		assert.Equal(t, 25, receipt.Quantity())
		assert.Equal(t, "BATCH-7", receipt.Batch())
		assert.Equal(t, &expiry, receipt.Expiry())
		assert.Nil(t, receipt.OriginDeliveryItemID())
	})

	t.Run("should allow zero quantity", func(t *testing.T) {
		receipt, err := stock.NewReceipt(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			0, testUnitCost(t), "", nil, now,
		)

		require.NoError(t, err)
		assert.Equal(t, 0, receipt.Quantity())
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		_, err := stock.NewReceipt(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			-1, testUnitCost(t), "", nil, now,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed unit cost", func(t *testing.T) {
		_, err := stock.NewReceipt(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			1, kernel.Money{}, "", nil, now,
		)

		require.Error(t, err)
	})
}

func TestReceipt_MintUnits(t *testing.T) {
	now := time.Now()

	t.Run("mints one available unit per received quantity", func(t *testing.T) {
		productID := kernel.NewUUID()
		companyID := kernel.NewUUID()

		receipt, err := stock.NewReceipt(
			kernel.NewUUID(), productID, companyID,
			10, testUnitCost(t), "", nil, now,
		)
		require.NoError(t, err)

		units, err := receipt.MintUnits()

		require.NoError(t, err)
		require.Len(t, units, 10)

		seen := make(map[string]bool, len(units))
		for _, unit := range units {
			require.NoError(t, unit.Validate())
			assert.Equal(t, stock.UnitStatusAvailable, unit.Status())
			assert.True(t, unit.ReceiptID().IsEqual(receipt.ID()))
			assert.True(t, unit.ProductID().IsEqual(productID))
			assert.True(t, unit.CompanyID().IsEqual(companyID))
			assert.False(t, seen[unit.ID().String()], "unit identities must be unique")
			seen[unit.ID().String()] = true
		}
	})

	t.Run("zero-quantity receipt mints nothing", func(t *testing.T) {
		receipt, err := stock.NewReceipt(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			0, testUnitCost(t), "", nil, now,
		)
		require.NoError(t, err)

		units, err := receipt.MintUnits()

		require.NoError(t, err)
		assert.Empty(t, units)
	})

	t.Run("zero value receipt cannot mint", func(t *testing.T) {
		var receipt stock.Receipt

		_, err := receipt.MintUnits()

		require.ErrorIs(t, err, stock.ErrReceiptIsNotConstructed)
	})
}

func TestReceipt_MarkOrigin(t *testing.T) {
	receipt, err := stock.NewReceipt(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		5, testUnitCost(t), "", nil, time.Now(),
	)
	require.NoError(t, err)

	deliveryItemID := kernel.NewUUID()
	require.NoError(t, receipt.MarkOrigin(deliveryItemID))

	require.NotNil(t, receipt.OriginDeliveryItemID())
	assert.True(t, receipt.OriginDeliveryItemID().IsEqual(deliveryItemID))

	require.Error(t, receipt.MarkOrigin(kernel.UUID{}))
}
