package commands

import (
	"context"
	"strconv"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// reserveDeliveryStock reserves the supplier's stock for every line of a
// freshly planned delivery. Availability is verified for all lines before any
// unit is reserved; a shortfall on any line aborts with InsufficientStockError
// and the surrounding transaction rolls the rest back.
func reserveDeliveryStock(ctx context.Context, repo ports.StockRepository, planned *delivery.Delivery) error {
	supplierID := planned.SupplierID()

	for _, item := range planned.Items() {
		available, err := repo.CountAvailable(ctx, item.ProductID(), supplierID)
		if err != nil {
			return err
		}
		if available < item.QuantityToDeliver() {
			return errs.NewInsufficientStockError(item.ProductID().String(), available, item.QuantityToDeliver())
		}
	}

	for _, item := range planned.Items() {
		err := repo.ReserveAvailable(ctx, item.ProductID(), supplierID, item.QuantityToDeliver(), item.ID())
		if err != nil {
			return err
		}
	}

	return nil
}

func deliveryCreatedEvent(planned *delivery.Delivery) ports.Event {
	deliveryID := planned.ID()

	event := ports.Event{
		Kind:                 ports.EventKindDeliveryCreated,
		DeliveryID:           &deliveryID,
		ActorCompanyID:       planned.SupplierID(),
		CounterpartCompanyID: planned.BuyerID(),
		Summary: map[string]string{
			"items": strconv.Itoa(len(planned.Items())),
		},
	}
	if planned.IsOrderLinked() {
		event.PurchaseOrderID = planned.OrderID()
	}
	return event
}
