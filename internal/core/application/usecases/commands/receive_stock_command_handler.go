package commands

import (
	"context"
	"strconv"
	"time"

	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"
)

// ReceiveStockCommandHandler records incoming stock: it persists the receipt,
// mints one Available unit per received quantity and announces the arrival.
type ReceiveStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewReceiveStockCommandHandler creates a handler for stock intake operations.
func NewReceiveStockCommandHandler(uowFactory StockUoWFactory) ReceiveStockCommandHandler {
	return ReceiveStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock intake command. The receipt, its units and the
// notification event are stored in one transaction.
func (h *ReceiveStockCommandHandler) Handle(ctx context.Context, cmd ReceiveStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	receipt, err := stock.NewReceipt(
		cmd.ReceiptID(),
		cmd.ProductID(),
		cmd.CompanyID(),
		cmd.Quantity(),
		cmd.UnitCost(),
		cmd.Batch(),
		cmd.Expiry(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	units, err := receipt.MintUnits()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StockRepository().AddReceipt(ctx, receipt, units); err != nil {
		return err
	}

	// Intake has no counterpart company; the counterpart stays zero.
	event := ports.Event{
		Kind:           ports.EventKindStockReceived,
		ActorCompanyID: cmd.CompanyID(),
		Summary: map[string]string{
			"productId": cmd.ProductID().String(),
			"quantity":  strconv.Itoa(cmd.Quantity()),
		},
	}
	if err = uow.NotificationOutbox().Enqueue(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
