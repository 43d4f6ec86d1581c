package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the purchase order aggregate root: a buyer's request to a
// supplier, composed of one or more lines. It owns the per-line approval
// decisions and derives its overall status from them.
//
// Order follows these invariants:
//   - Must have valid buyer and supplier identifiers (distinct companies)
//   - Must have at least one line
//   - The overall status is always derived, never stored
type Order struct {
	id         kernel.UUID
	buyerID    kernel.UUID
	supplierID kernel.UUID

	items []*Item

	deliveredAt *time.Time

	isConstructed bool
}

// NewOrder creates a purchase order with its lines, all pending approval.
func NewOrder(id, buyerID, supplierID kernel.UUID, items []*Item) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setParties(buyerID, supplierID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(id, buyerID, supplierID kernel.UUID, items []*Item, deliveredAt *time.Time) (*Order, error) {
	order, err := NewOrder(id, buyerID, supplierID, items)
	if err != nil {
		return nil, err
	}

	order.deliveredAt = deliveredAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the company that placed the order.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SupplierID returns the company fulfilling the order.
func (o *Order) SupplierID() kernel.UUID {
	return o.supplierID
}

// Items returns the order lines.
func (o *Order) Items() []*Item {
	return o.items
}

// Item returns the line with the given identifier, or an ObjectNotFoundError
// when the line does not belong to this order.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItemId", itemID.String())
}

// ApprovedItems returns the lines the buyer approved.
func (o *Order) ApprovedItems() []*Item {
	approved := make([]*Item, 0, len(o.items))
	for _, item := range o.items {
		if item.Status() == ItemStatusApproved {
			approved = append(approved, item)
		}
	}
	return approved
}

// SetItemStatus records the buyer's decision on one line. Fails with
// ObjectNotFoundError when the line does not belong to this order.
func (o *Order) SetItemStatus(itemID kernel.UUID, decision ItemStatus) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	return item.Decide(decision)
}

// IssueItem records the supplier's committed quantity on one line.
func (o *Order) IssueItem(itemID kernel.UUID, quantity int) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	return item.Issue(quantity)
}

// OverallStatus derives the aggregate approval state from the current item
// statuses. Recomputed on every call; never cached across a mutation.
func (o *Order) OverallStatus() OverallStatus {
	statuses := make([]ItemStatus, 0, len(o.items))
	for _, item := range o.items {
		statuses = append(statuses, item.Status())
	}
	return DeriveOverallStatus(statuses)
}

// DeliveredAt returns the time the order was fully delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// MarkDelivered stamps the order as fully delivered. The first timestamp
// wins; later confirmations on the same order keep it.
func (o *Order) MarkDelivered(at time.Time) {
	if o.deliveredAt == nil {
		o.deliveredAt = &at
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(buyerID, supplierID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	if err := supplierID.Validate(); err != nil {
		return err
	}
	if buyerID.IsEqual(supplierID) {
		return errs.NewValueIsInvalidError("buyer and supplier must be different companies")
	}

	o.buyerID = buyerID
	o.supplierID = supplierID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}
