package delivery

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")
)

// ItemOrigin tells where a delivery line came from: a purchase order line or
// a direct stock shipment with no order behind it. The zero value is invalid;
// use OrderOrigin or DirectOrigin.
type ItemOrigin struct {
	orderItemID *kernel.UUID
	isSet       bool
}

// OrderOrigin links a delivery line to the purchase order line it fulfills.
func OrderOrigin(orderItemID kernel.UUID) (ItemOrigin, error) {
	if err := orderItemID.Validate(); err != nil {
		return ItemOrigin{}, err
	}
	return ItemOrigin{orderItemID: &orderItemID, isSet: true}, nil
}

// DirectOrigin marks a delivery line as a direct shipment without an order.
func DirectOrigin() ItemOrigin {
	return ItemOrigin{isSet: true}
}

// Validate ensures the origin was built through OrderOrigin or DirectOrigin.
func (o ItemOrigin) Validate() error {
	if !o.isSet {
		return errs.NewValueIsRequiredError("item origin")
	}
	return nil
}

// IsOrderBased reports whether the line fulfills a purchase order line.
func (o ItemOrigin) IsOrderBased() bool {
	return o.orderItemID != nil
}

// OrderItemID returns the purchase order line this delivery line fulfills.
// Only meaningful when IsOrderBased reports true.
func (o ItemOrigin) OrderItemID() *kernel.UUID {
	return o.orderItemID
}

// Item is one line of a delivery: a planned quantity of a catalog item, its
// origin, and the receipt outcome once the buyer confirms.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID

	quantityToDeliver int
	origin            ItemOrigin

	unitPrice kernel.Money
	batch     string
	expiry    *time.Time

	quantityDelivered int
	quantityDamaged   int
	quantityRejected  int

	status ItemStatus

	isConstructed bool
}

// NewItem creates a pending delivery line. The planned quantity must be
// positive.
func NewItem(
	id, productID kernel.UUID,
	quantityToDeliver int,
	origin ItemOrigin,
	unitPrice kernel.Money,
	batch string,
	expiry *time.Time,
) (*Item, error) {
	item := &Item{
		batch:         batch,
		expiry:        expiry,
		status:        ItemStatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantityToDeliver(quantityToDeliver),
		item.setOrigin(origin),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a delivery line from persistence.
func RestoreItem(
	id, productID kernel.UUID,
	quantityToDeliver int,
	origin ItemOrigin,
	unitPrice kernel.Money,
	batch string,
	expiry *time.Time,
	quantityDelivered, quantityDamaged, quantityRejected int,
	status ItemStatus,
) (*Item, error) {
	item, err := NewItem(id, productID, quantityToDeliver, origin, unitPrice, batch, expiry)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if quantityDelivered < 0 || quantityDamaged < 0 || quantityRejected < 0 {
		return nil, errs.NewValueIsInvalidError("receipt quantities must not be negative")
	}

	item.quantityDelivered = quantityDelivered
	item.quantityDamaged = quantityDamaged
	item.quantityRejected = quantityRejected
	item.status = status
	return item, nil
}

// Validate ensures the item was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the catalog item shipped.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// QuantityToDeliver returns the planned quantity.
func (i *Item) QuantityToDeliver() int {
	return i.quantityToDeliver
}

// Origin returns where the line came from.
func (i *Item) Origin() ItemOrigin {
	return i.origin
}

// UnitPrice returns the per-unit price on the line.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Batch returns the batch identifier, if any.
func (i *Item) Batch() string {
	return i.batch
}

// Expiry returns the expiry date, or nil.
func (i *Item) Expiry() *time.Time {
	return i.expiry
}

// QuantityDelivered returns how many units the buyer accepted.
func (i *Item) QuantityDelivered() int {
	return i.quantityDelivered
}

// QuantityDamaged returns how many units arrived damaged.
func (i *Item) QuantityDamaged() int {
	return i.quantityDamaged
}

// QuantityRejected returns how many units the buyer turned away.
func (i *Item) QuantityRejected() int {
	return i.quantityRejected
}

// Status returns the receipt outcome of the line.
func (i *Item) Status() ItemStatus {
	return i.status
}

// IsFullyDelivered reports whether the buyer accepted the full planned
// quantity.
func (i *Item) IsFullyDelivered() bool {
	return i.quantityDelivered == i.quantityToDeliver
}

// RecordReceipt records one confirmation's split of the line into received,
// damaged and rejected units. Splits carry only what this confirmation
// accounts for; a follow-up on a partially received line adds to the running
// totals, so a line can never accumulate more than its planned quantity. The
// status derives from the total: Delivered when received in full, Rejected
// when nothing has been received so far, Pending otherwise.
func (i *Item) RecordReceipt(received, damaged, rejected int) error {
	if received < 0 || damaged < 0 || rejected < 0 {
		return errs.NewValueIsInvalidError("receipt quantities must not be negative")
	}
	remainder := i.quantityToDeliver - i.quantityDelivered
	if received > remainder {
		return errs.NewValueIsOutOfRangeError("quantityReceived", received, 0, remainder)
	}

	i.quantityDelivered += received
	i.quantityDamaged += damaged
	i.quantityRejected += rejected

	switch {
	case i.quantityDelivered == i.quantityToDeliver:
		i.status = ItemStatusDelivered
	case i.quantityDelivered == 0:
		i.status = ItemStatusRejected
	default:
		i.status = ItemStatusPending
	}

	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.productID = id
	return nil
}

func (i *Item) setQuantityToDeliver(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantityToDeliver",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantityToDeliver = quantity
	return nil
}

func (i *Item) setOrigin(origin ItemOrigin) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	i.origin = origin
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
