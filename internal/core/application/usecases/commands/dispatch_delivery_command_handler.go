package commands

import (
	"context"
	"strconv"
	"time"

	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// DispatchDeliveryCommandHandler moves a pending delivery into transit and
// carries its reserved stock along: every Reserved unit linked to the
// delivery's lines becomes InTransit in the same transaction.
type DispatchDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewDispatchDeliveryCommandHandler creates a handler for delivery dispatch.
func NewDispatchDeliveryCommandHandler(uowFactory DeliveryUoWFactory) DispatchDeliveryCommandHandler {
	return DispatchDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command. Only the supplier company may
// dispatch its delivery.
func (h *DispatchDeliveryCommandHandler) Handle(ctx context.Context, cmd DispatchDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

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

	if !d.CanBeDispatchedBy(cmd.ActorCompanyID()) {
		return errs.NewForbiddenError(cmd.ActorCompanyID().String(), "dispatch delivery")
	}

	if err = d.Dispatch(time.Now(), cmd.Carrier(), cmd.TrackingNumber()); err != nil {
		return err
	}

	moved, err := uow.StockRepository().TransitionForDeliveryItems(
		ctx,
		d.ItemIDs(),
		[]stock.UnitStatus{stock.UnitStatusReserved},
		stock.UnitStatusInTransit,
	)
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	deliveryID := d.ID()
	event := ports.Event{
		Kind:                 ports.EventKindDeliveryDispatch,
		DeliveryID:           &deliveryID,
		PurchaseOrderID:      d.OrderID(),
		ActorCompanyID:       d.SupplierID(),
		CounterpartCompanyID: d.BuyerID(),
		Summary: map[string]string{
			"carrier":    cmd.Carrier(),
			"unitsMoved": strconv.Itoa(moved),
		},
	}
	if err = uow.NotificationOutbox().Enqueue(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
