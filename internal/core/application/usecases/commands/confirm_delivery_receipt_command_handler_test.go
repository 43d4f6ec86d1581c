package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmDeliveryReceiptCommand(t *testing.T) {
	t.Run("rejects negative quantities", func(t *testing.T) {
		_, err := commands.NewConfirmDeliveryReceiptCommand(
			kernel.NewUUID(), kernel.NewUUID(),
			[]delivery.ReceiptSplit{{ItemID: kernel.NewUUID(), Received: -1}},
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty splits", func(t *testing.T) {
		_, err := commands.NewConfirmDeliveryReceiptCommand(kernel.NewUUID(), kernel.NewUUID(), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestConfirmDeliveryReceiptCommandHandler_Handle_PartialReceipt(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	item := testDeliveryItem(t, 10)
	d := testInTransitDelivery(t, supplierID, buyerID, item)

	cmd, err := commands.NewConfirmDeliveryReceiptCommand(d.ID(), buyerID, []delivery.ReceiptSplit{
		{ItemID: item.ID(), Received: 7, Rejected: 3},
	})
	require.NoError(t, err)

	stockRepo := new(MockStockRepository)
	deliveryRepo := new(MockDeliveryRepository)
	outbox := new(MockOutbox)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("AddReceipt", mock.Anything, mock.MatchedBy(func(r *stock.Receipt) bool {
			return r.CompanyID().IsEqual(buyerID) && r.Quantity() == 7 && r.OriginDeliveryItemID() != nil
		}), mock.MatchedBy(func(units []*stock.Unit) bool {
			return len(units) == 7
		})).Return(nil).Once(),
		stockRepo.On("TransitionForDeliveryItems", mock.Anything, d.ItemIDs(),
			[]stock.UnitStatus{stock.UnitStatusReserved, stock.UnitStatusInTransit},
			stock.UnitStatusDelivered).Return(10, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("NotificationOutbox").Return(outbox).Once(),
		outbox.On("Enqueue", mock.Anything, mock.MatchedBy(func(e ports.Event) bool {
			return e.Kind == ports.EventKindDeliveryConfirmed
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryReceiptCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, delivery.StatusPartiallyDelivered, d.Status())
	assert.Equal(t, delivery.ItemStatusPending, item.Status())
	stockRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
}

func TestConfirmDeliveryReceiptCommandHandler_Handle_FollowUpConfirmationMintsOnlyRemainder(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	item := testDeliveryItem(t, 10)
	d := testInTransitDelivery(t, supplierID, buyerID, item)

	var mintedQuantities []int
	stockRepo := new(MockStockRepository)
	stockRepo.On("AddReceipt", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			receipt := args.Get(1).(*stock.Receipt)
			units := args.Get(2).([]*stock.Unit)
			require.Len(t, units, receipt.Quantity())
			mintedQuantities = append(mintedQuantities, receipt.Quantity())
		}).Return(nil)
	stockRepo.On("TransitionForDeliveryItems", mock.Anything, d.ItemIDs(),
		mock.Anything, stock.UnitStatusDelivered).Return(10, nil)

	deliveryRepo := new(MockDeliveryRepository)
	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil)
	deliveryRepo.On("Update", mock.Anything, d).Return(nil)

	outbox := new(MockOutbox)
	outbox.On("Enqueue", mock.Anything, mock.Anything).Return(nil)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("StockRepository").Return(stockRepo)
	uow.On("NotificationOutbox").Return(outbox)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewConfirmDeliveryReceiptCommandHandler(factory)

	first, err := commands.NewConfirmDeliveryReceiptCommand(d.ID(), buyerID, []delivery.ReceiptSplit{
		{ItemID: item.ID(), Received: 7},
	})
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, first))
	require.Equal(t, delivery.StatusPartiallyDelivered, d.Status())

	second, err := commands.NewConfirmDeliveryReceiptCommand(d.ID(), buyerID, []delivery.ReceiptSplit{
		{ItemID: item.ID(), Received: 3},
	})
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, second))

	assert.Equal(t, delivery.StatusDelivered, d.Status())
	assert.Equal(t, 10, item.QuantityDelivered())

	// The buyer ends up with exactly the planned quantity across both
	// confirmations, never the sum of running totals.
	total := 0
	for _, q := range mintedQuantities {
		total += q
	}
	assert.Equal(t, []int{7, 3}, mintedQuantities)
	assert.Equal(t, item.QuantityToDeliver(), total)
	stockRepo.AssertNumberOfCalls(t, "AddReceipt", 2)
}

func TestConfirmDeliveryReceiptCommandHandler_Handle_FollowUpBeyondRemainderRejected(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	item := testDeliveryItem(t, 10)
	d := testInTransitDelivery(t, supplierID, buyerID, item)
	require.NoError(t, d.ConfirmReceipt(time.Now(), []delivery.ReceiptSplit{
		{ItemID: item.ID(), Received: 7},
	}))

	cmd, err := commands.NewConfirmDeliveryReceiptCommand(d.ID(), buyerID, []delivery.ReceiptSplit{
		{ItemID: item.ID(), Received: 10},
	})
	require.NoError(t, err)

	stockRepo := new(MockStockRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryReceiptCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	stockRepo.AssertNotCalled(t, "AddReceipt", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmDeliveryReceiptCommandHandler_Handle_FullReceiptMarksOrderDelivered(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	o, _ := testOrder(t, buyerID, supplierID)
	orderID := o.ID()

	item := testDeliveryItem(t, 10)
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), &orderID, supplierID, buyerID,
		time.Now().Add(48*time.Hour), []*delivery.Item{item}, time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, d.Dispatch(time.Now(), "DHL", ""))

	cmd, err := commands.NewConfirmDeliveryReceiptCommand(d.ID(), buyerID, []delivery.ReceiptSplit{
		{ItemID: item.ID(), Received: 10},
	})
	require.NoError(t, err)

	stockRepo := new(MockStockRepository)
	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	outbox := new(MockOutbox)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("AddReceipt", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once(),
		stockRepo.On("TransitionForDeliveryItems", mock.Anything, d.ItemIDs(),
			mock.Anything, stock.UnitStatusDelivered).Return(10, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("NotificationOutbox").Return(outbox).Once(),
		outbox.On("Enqueue", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryReceiptCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, delivery.StatusDelivered, d.Status())
	require.NotNil(t, o.DeliveredAt())
	orderRepo.AssertExpectations(t)
}

func TestConfirmDeliveryReceiptCommandHandler_Handle_NothingReceivedMintsNoStock(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	item := testDeliveryItem(t, 10)
	d := testInTransitDelivery(t, supplierID, buyerID, item)

	cmd, err := commands.NewConfirmDeliveryReceiptCommand(d.ID(), buyerID, []delivery.ReceiptSplit{
		{ItemID: item.ID(), Rejected: 10},
	})
	require.NoError(t, err)

	stockRepo := new(MockStockRepository)
	deliveryRepo := new(MockDeliveryRepository)
	outbox := new(MockOutbox)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("TransitionForDeliveryItems", mock.Anything, d.ItemIDs(),
			mock.Anything, stock.UnitStatusDelivered).Return(10, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("NotificationOutbox").Return(outbox).Once(),
		outbox.On("Enqueue", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryReceiptCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, delivery.ItemStatusRejected, item.Status())
	stockRepo.AssertNotCalled(t, "AddReceipt", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmDeliveryReceiptCommandHandler_Handle_ForbiddenForNonBuyer(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	item := testDeliveryItem(t, 10)
	d := testInTransitDelivery(t, supplierID, buyerID, item)

	cmd, err := commands.NewConfirmDeliveryReceiptCommand(d.ID(), supplierID, []delivery.ReceiptSplit{
		{ItemID: item.ID(), Received: 10},
	})
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryReceiptCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, delivery.StatusInTransit, d.Status())
}

func TestConfirmDeliveryReceiptCommandHandler_Handle_IllegalBeforeDispatch(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	item := testDeliveryItem(t, 10)
	d := testPendingDelivery(t, supplierID, buyerID, item)

	cmd, err := commands.NewConfirmDeliveryReceiptCommand(d.ID(), buyerID, []delivery.ReceiptSplit{
		{ItemID: item.ID(), Received: 10},
	})
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryReceiptCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrIllegalStateTransition)
}

func TestConfirmDeliveryReceiptCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ConfirmDeliveryReceiptCommand{} // not constructed properly
	h := commands.NewConfirmDeliveryReceiptCommandHandler(new(MockUoWFactory))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrConfirmDeliveryReceiptCommandIsNotConstructed)
}
