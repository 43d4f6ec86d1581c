package order

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

// Item is one line of a purchase order: a requested quantity of a catalog
// item, the buyer's approval decision, and the quantity the supplier commits
// to fulfilling.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID

	quantity int
	// quantityIssued is the amount the supplier commits to; zero means the
	// supplier has not processed the line and the requested quantity stands.
	quantityIssued int
	unitPrice      kernel.Money
	batch          string
	expiry         *time.Time

	status ItemStatus

	isConstructed bool
}

// NewItem creates a pending order line. Quantity must be positive.
func NewItem(id, productID kernel.UUID, quantity int, unitPrice kernel.Money, batch string, expiry *time.Time) (*Item, error) {
	item := &Item{
		batch:         batch,
		expiry:        expiry,
		status:        ItemStatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an order line from persistence.
func RestoreItem(
	id, productID kernel.UUID,
	quantity, quantityIssued int,
	unitPrice kernel.Money,
	batch string,
	expiry *time.Time,
	status ItemStatus,
) (*Item, error) {
	item, err := NewItem(id, productID, quantity, unitPrice, batch, expiry)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if quantityIssued < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantityIssued",
			fmt.Errorf("%d is negative", quantityIssued))
	}

	item.status = status
	item.quantityIssued = quantityIssued
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

// ProductID returns the catalog item requested.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the requested quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// QuantityIssued returns the quantity the supplier committed to, or zero if
// the line has not been processed.
func (i *Item) QuantityIssued() int {
	return i.quantityIssued
}

// RequiredQuantity returns the quantity a delivery must cover: the issued
// quantity when the supplier has processed the line, the requested quantity
// otherwise.
func (i *Item) RequiredQuantity() int {
	if i.quantityIssued > 0 {
		return i.quantityIssued
	}
	return i.quantity
}

// UnitPrice returns the per-unit price on the line.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns the price of the full requested quantity.
func (i *Item) LineTotal() (kernel.Money, error) {
	return i.unitPrice.Mul(i.quantity)
}

// Batch returns the batch identifier, if any.
func (i *Item) Batch() string {
	return i.batch
}

// Expiry returns the expiry date, or nil.
func (i *Item) Expiry() *time.Time {
	return i.expiry
}

// Status returns the buyer's approval decision on the line.
func (i *Item) Status() ItemStatus {
	return i.status
}

// Decide records the buyer's decision on the line. Only Approved or Rejected
// are decisions; a decision may be revised until a delivery exists (the
// planner's idempotency makes later revisions harmless).
func (i *Item) Decide(decision ItemStatus) error {
	if !decision.IsDecision() {
		return errs.NewValueIsInvalidErrorWithCause("decision",
			fmt.Errorf("%s is not a decision", decision))
	}

	i.status = decision
	return nil
}

// Issue records the quantity the supplier commits to fulfilling. The amount
// must be positive and no more than the requested quantity.
func (i *Item) Issue(quantity int) error {
	if quantity <= 0 || quantity > i.quantity {
		return errs.NewValueIsOutOfRangeError("quantityIssued", quantity, 1, i.quantity)
	}

	i.quantityIssued = quantity
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

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
