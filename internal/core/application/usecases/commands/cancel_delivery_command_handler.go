package commands

import (
	"context"
	"strconv"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CancelDeliveryCommandHandler calls a delivery off and returns its stock to
// the pool: every Reserved or InTransit unit linked to the delivery's lines
// becomes Available again with its link cleared, in the same transaction as
// the status change.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for delivery
// cancellation.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. Only the supplier company may
// cancel its delivery, and only before receipt confirmation started.
func (h *CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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
		return errs.NewForbiddenError(cmd.ActorCompanyID().String(), "cancel delivery")
	}

	if err = d.Cancel(time.Now()); err != nil {
		return err
	}

	released, err := uow.StockRepository().ReleaseForDeliveryItems(ctx, d.ItemIDs())
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	deliveryID := d.ID()
	event := ports.Event{
		Kind:                 ports.EventKindDeliveryCancelled,
		DeliveryID:           &deliveryID,
		PurchaseOrderID:      d.OrderID(),
		ActorCompanyID:       d.SupplierID(),
		CounterpartCompanyID: d.BuyerID(),
		Summary: map[string]string{
			"unitsReleased": strconv.Itoa(released),
		},
	}
	if err = uow.NotificationOutbox().Enqueue(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
