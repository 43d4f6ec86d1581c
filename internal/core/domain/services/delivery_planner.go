package services

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ErrNoApprovedItems is returned when a delivery is planned from an order
// that has no approved lines to ship.
var ErrNoApprovedItems = errors.New("order has no approved items")

// LineOverride lets the supplier adjust shipment details of one order line
// when creating a delivery explicitly. Zero fields keep the order line's
// values.
type LineOverride struct {
	OrderItemID kernel.UUID
	Batch       string
	Expiry      *time.Time
	UnitPrice   *kernel.Money
}

// DirectLine describes one line of a direct delivery that ships without a
// purchase order behind it.
type DirectLine struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
	Batch     string
	Expiry    *time.Time
}

// DeliveryPlanner is a domain service that turns an approved purchase order,
// or a direct shipment request, into a pending Delivery aggregate.
//
// Business rules:
//   - Only approved order lines are planned
//   - The planned quantity per line is the supplier's issued quantity,
//     falling back to the requested quantity when the line was not processed
//   - The planner never reserves stock; the caller reserves the planned
//     quantities atomically alongside storing the delivery
type DeliveryPlanner struct{}

// NewDeliveryPlanner creates a new DeliveryPlanner instance.
func NewDeliveryPlanner() DeliveryPlanner {
	return DeliveryPlanner{}
}

// PlanFromOrder builds a pending delivery covering every approved line of the
// order. Fails with ErrNoApprovedItems when nothing is approved.
func (p DeliveryPlanner) PlanFromOrder(
	o *order.Order,
	plannedDate time.Time,
	now time.Time,
	overrides []LineOverride,
) (*delivery.Delivery, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	approved := o.ApprovedItems()
	if len(approved) == 0 {
		return nil, ErrNoApprovedItems
	}

	items := make([]*delivery.Item, 0, len(approved))
	for _, orderItem := range approved {
		item, err := p.planLine(orderItem, overrides)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	orderID := o.ID()
	return delivery.NewDelivery(
		kernel.NewUUID(),
		&orderID,
		o.SupplierID(),
		o.BuyerID(),
		plannedDate,
		items,
		now,
	)
}

// PlanDirect builds a pending delivery from caller-supplied lines with no
// purchase order linkage.
func (p DeliveryPlanner) PlanDirect(
	supplierID, buyerID kernel.UUID,
	lines []DirectLine,
	plannedDate time.Time,
	now time.Time,
) (*delivery.Delivery, error) {
	items := make([]*delivery.Item, 0, len(lines))
	for _, line := range lines {
		item, err := delivery.NewItem(
			kernel.NewUUID(),
			line.ProductID,
			line.Quantity,
			delivery.DirectOrigin(),
			line.UnitPrice,
			line.Batch,
			line.Expiry,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return delivery.NewDelivery(
		kernel.NewUUID(),
		nil,
		supplierID,
		buyerID,
		plannedDate,
		items,
		now,
	)
}

func (p DeliveryPlanner) planLine(orderItem *order.Item, overrides []LineOverride) (*delivery.Item, error) {
	origin, err := delivery.OrderOrigin(orderItem.ID())
	if err != nil {
		return nil, err
	}

	unitPrice := orderItem.UnitPrice()
	batch := orderItem.Batch()
	expiry := orderItem.Expiry()

	for _, override := range overrides {
		if !override.OrderItemID.IsEqual(orderItem.ID()) {
			continue
		}
		if override.UnitPrice != nil {
			unitPrice = *override.UnitPrice
		}
		if override.Batch != "" {
			batch = override.Batch
		}
		if override.Expiry != nil {
			expiry = override.Expiry
		}
	}

	return delivery.NewItem(
		kernel.NewUUID(),
		orderItem.ProductID(),
		orderItem.RequiredQuantity(),
		origin,
		unitPrice,
		batch,
		expiry,
	)
}
