package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func directDeliveryCommand(t *testing.T, supplierID, buyerID kernel.UUID, quantity int) commands.CreateDirectDeliveryCommand {
	t.Helper()

	cmd, err := commands.NewCreateDirectDeliveryCommand(
		supplierID, buyerID, time.Now().Add(24*time.Hour),
		[]services.DirectLine{
			{ProductID: kernel.NewUUID(), Quantity: quantity, UnitPrice: testMoney(t)},
		},
	)
	require.NoError(t, err)
	return cmd
}

func TestNewCreateDirectDeliveryCommand(t *testing.T) {
	t.Run("rejects empty line list", func(t *testing.T) {
		_, err := commands.NewCreateDirectDeliveryCommand(
			kernel.NewUUID(), kernel.NewUUID(), time.Now(), nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCreateDirectDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	cmd := directDeliveryCommand(t, supplierID, buyerID, 5)

	stockRepo := new(MockStockRepository)
	deliveryRepo := new(MockDeliveryRepository)
	outbox := new(MockOutbox)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("CountAvailable", mock.Anything, mock.Anything, supplierID).Return(5, nil).Once(),
		stockRepo.On("ReserveAvailable", mock.Anything, mock.Anything, supplierID, 5, mock.Anything).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("NotificationOutbox").Return(outbox).Once(),
		outbox.On("Enqueue", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDirectDeliveryCommandHandler(factory)
	deliveryID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, deliveryID.Validate())
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDirectDeliveryCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	cmd := directDeliveryCommand(t, supplierID, kernel.NewUUID(), 5)

	stockRepo := new(MockStockRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("CountAvailable", mock.Anything, mock.Anything, supplierID).Return(2, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDirectDeliveryCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	deliveryRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateDirectDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDirectDeliveryCommand{} // not constructed properly
	h := commands.NewCreateDirectDeliveryCommandHandler(new(MockDeliveryUoWFactory))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCreateDirectDeliveryCommandIsNotConstructed)
}
