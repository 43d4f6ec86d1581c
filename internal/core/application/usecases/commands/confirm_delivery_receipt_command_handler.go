package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ConfirmDeliveryReceiptCommandHandler settles a delivery on the buyer side.
// In one transaction it records the per-line receipt split, mints fresh
// Available units at the buyer company for everything received, retires the
// supplier's units for the delivery to Delivered, and marks an order-linked
// delivery's order as delivered once everything arrived.
//
// Received stock becomes a new ledger entry rather than a transfer of the
// supplier's unit identities, because the owning company changes.
type ConfirmDeliveryReceiptCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmDeliveryReceiptCommandHandler creates a handler for receipt
// confirmation.
func NewConfirmDeliveryReceiptCommandHandler(uowFactory UoWFactory) ConfirmDeliveryReceiptCommandHandler {
	return ConfirmDeliveryReceiptCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command. Only the buyer company may
// confirm, and only while the delivery is InTransit or PartiallyDelivered.
func (h *ConfirmDeliveryReceiptCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryReceiptCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if !d.CanBeConfirmedBy(cmd.ActorCompanyID()) {
		return errs.NewForbiddenError(cmd.ActorCompanyID().String(), "confirm delivery receipt")
	}

	if err = d.ConfirmReceipt(now, cmd.Splits()); err != nil {
		return err
	}

	stockRepo := uow.StockRepository()

	for _, split := range cmd.Splits() {
		if split.Received == 0 {
			continue
		}

		item, err := d.Item(split.ItemID)
		if err != nil {
			return err
		}

		if err = h.mintBuyerStock(ctx, stockRepo, d.BuyerID(), item, split.Received, now); err != nil {
			return err
		}
	}

	_, err = stockRepo.TransitionForDeliveryItems(
		ctx,
		d.ItemIDs(),
		[]stock.UnitStatus{stock.UnitStatusReserved, stock.UnitStatusInTransit},
		stock.UnitStatusDelivered,
	)
	if err != nil {
		return err
	}

	if d.IsOrderLinked() && d.Status() == delivery.StatusDelivered {
		if err = h.markOrderDelivered(ctx, uow, *d.OrderID(), now); err != nil {
			return err
		}
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	deliveryID := d.ID()
	event := ports.Event{
		Kind:                 ports.EventKindDeliveryConfirmed,
		DeliveryID:           &deliveryID,
		PurchaseOrderID:      d.OrderID(),
		ActorCompanyID:       d.BuyerID(),
		CounterpartCompanyID: d.SupplierID(),
		Summary: map[string]string{
			"status": d.Status().String(),
		},
	}
	if err = uow.NotificationOutbox().Enqueue(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *ConfirmDeliveryReceiptCommandHandler) mintBuyerStock(
	ctx context.Context,
	stockRepo ports.StockRepository,
	buyerID kernel.UUID,
	item *delivery.Item,
	received int,
	now time.Time,
) error {
	receipt, err := stock.NewReceipt(
		kernel.NewUUID(),
		item.ProductID(),
		buyerID,
		received,
		item.UnitPrice(),
		item.Batch(),
		item.Expiry(),
		now,
	)
	if err != nil {
		return err
	}

	if err = receipt.MarkOrigin(item.ID()); err != nil {
		return err
	}

	units, err := receipt.MintUnits()
	if err != nil {
		return err
	}

	return stockRepo.AddReceipt(ctx, receipt, units)
}

func (h *ConfirmDeliveryReceiptCommandHandler) markOrderDelivered(
	ctx context.Context,
	uow UoW,
	orderID kernel.UUID,
	now time.Time,
) error {
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	o.MarkDelivered(now)
	return orderRepo.Update(ctx, o)
}
