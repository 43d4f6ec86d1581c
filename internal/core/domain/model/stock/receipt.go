package stock

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrReceiptIsNotConstructed is returned when a Receipt instance was not
	// created through NewReceipt or RestoreReceipt.
	ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt or RestoreReceipt")
)

// Receipt records the arrival of quantity units of one catalog item into one
// company's inventory: supplier intake, or the fresh ledger entry minted at
// the buyer side when a delivery is confirmed. Quantity is a non-negative
// integer; minting creates exactly that many Available units.
type Receipt struct {
	id        kernel.UUID
	productID kernel.UUID
	companyID kernel.UUID

	quantity int
	unitCost kernel.Money
	batch    string
	expiry   *time.Time

	// originDeliveryItemID is set when this receipt was minted by receipt
	// confirmation, pointing back at the delivery item that produced it.
	originDeliveryItemID *kernel.UUID

	receivedAt time.Time

	isConstructed bool
}

// NewReceipt creates a receipt for quantity units arriving at a company.
// Quantity must be non-negative; zero records the receipt without minting
// any units.
func NewReceipt(
	id, productID, companyID kernel.UUID,
	quantity int,
	unitCost kernel.Money,
	batch string,
	expiry *time.Time,
	receivedAt time.Time,
) (*Receipt, error) {
	receipt := &Receipt{
		batch:         batch,
		expiry:        expiry,
		receivedAt:    receivedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		receipt.setID(id),
		receipt.setProductID(productID),
		receipt.setCompanyID(companyID),
		receipt.setQuantity(quantity),
		receipt.setUnitCost(unitCost),
	); err != nil {
		return nil, err
	}

	return receipt, nil
}

// RestoreReceipt reconstructs a receipt from persistence.
func RestoreReceipt(
	id, productID, companyID kernel.UUID,
	quantity int,
	unitCost kernel.Money,
	batch string,
	expiry *time.Time,
	originDeliveryItemID *kernel.UUID,
	receivedAt time.Time,
) (*Receipt, error) {
	receipt, err := NewReceipt(id, productID, companyID, quantity, unitCost, batch, expiry, receivedAt)
	if err != nil {
		return nil, err
	}

	receipt.originDeliveryItemID = originDeliveryItemID
	return receipt, nil
}

// MarkOrigin links this receipt to the delivery item that minted it during
// receipt confirmation.
func (r *Receipt) MarkOrigin(deliveryItemID kernel.UUID) error {
	if err := deliveryItemID.Validate(); err != nil {
		return err
	}
	r.originDeliveryItemID = &deliveryItemID
	return nil
}

// MintUnits creates the receipt's units, one per received quantity, each
// starting Available at the receiving company.
func (r *Receipt) MintUnits() ([]*Unit, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	units := make([]*Unit, 0, r.quantity)
	for range r.quantity {
		unit, err := NewUnit(kernel.NewUUID(), r.id, r.productID, r.companyID)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	return units, nil
}

// Validate ensures the receipt was properly constructed.
func (r *Receipt) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReceiptIsNotConstructed
	}
	return nil
}

// ID returns the receipt's unique identifier.
func (r *Receipt) ID() kernel.UUID {
	return r.id
}

// ProductID returns the catalog item received.
func (r *Receipt) ProductID() kernel.UUID {
	return r.productID
}

// CompanyID returns the receiving company.
func (r *Receipt) CompanyID() kernel.UUID {
	return r.companyID
}

// Quantity returns the number of units received.
func (r *Receipt) Quantity() int {
	return r.quantity
}

// UnitCost returns the per-unit cost carried on this receipt.
func (r *Receipt) UnitCost() kernel.Money {
	return r.unitCost
}

// Batch returns the batch identifier, if any.
func (r *Receipt) Batch() string {
	return r.batch
}

// Expiry returns the expiry date, or nil for non-perishables.
func (r *Receipt) Expiry() *time.Time {
	return r.expiry
}

// OriginDeliveryItemID returns the delivery item that minted this receipt,
// or nil for a direct intake.
func (r *Receipt) OriginDeliveryItemID() *kernel.UUID {
	return r.originDeliveryItemID
}

// ReceivedAt returns the time the receipt was recorded.
func (r *Receipt) ReceivedAt() time.Time {
	return r.receivedAt
}

func (r *Receipt) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Receipt) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.productID = id
	return nil
}

func (r *Receipt) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.companyID = id
	return nil
}

func (r *Receipt) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	r.quantity = quantity
	return nil
}

func (r *Receipt) setUnitCost(unitCost kernel.Money) error {
	if err := unitCost.Validate(); err != nil {
		return err
	}
	r.unitCost = unitCost
	return nil
}
