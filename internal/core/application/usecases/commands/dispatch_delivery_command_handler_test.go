package commands_test

import (
	"testing"

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

func TestNewDispatchDeliveryCommand(t *testing.T) {
	t.Run("requires a carrier", func(t *testing.T) {
		_, err := commands.NewDispatchDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(), "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDispatchDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	d := testPendingDelivery(t, supplierID, buyerID, testDeliveryItem(t, 5))

	cmd, err := commands.NewDispatchDeliveryCommand(d.ID(), supplierID, "DHL", "JD014600003")
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
			[]stock.UnitStatus{stock.UnitStatusReserved}, stock.UnitStatusInTransit).Return(5, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("NotificationOutbox").Return(outbox).Once(),
		outbox.On("Enqueue", mock.Anything, mock.MatchedBy(func(e ports.Event) bool {
			return e.Kind == ports.EventKindDeliveryDispatch
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, delivery.StatusInTransit, d.Status())
	stockRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
}

func TestDispatchDeliveryCommandHandler_Handle_ForbiddenForNonSupplier(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	d := testPendingDelivery(t, supplierID, buyerID, testDeliveryItem(t, 5))

	cmd, err := commands.NewDispatchDeliveryCommand(d.ID(), buyerID, "DHL", "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, delivery.StatusPending, d.Status())
}

func TestDispatchDeliveryCommandHandler_Handle_IllegalFromInTransit(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	d := testInTransitDelivery(t, supplierID, buyerID, testDeliveryItem(t, 5))

	cmd, err := commands.NewDispatchDeliveryCommand(d.ID(), supplierID, "DHL", "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrIllegalStateTransition)
}

func TestDispatchDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DispatchDeliveryCommand{} // not constructed properly
	h := commands.NewDispatchDeliveryCommandHandler(new(MockDeliveryUoWFactory))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrDispatchDeliveryCommandIsNotConstructed)
}
