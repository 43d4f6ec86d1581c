package stock

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrUnitIsNotConstructed is returned when a Unit instance was not created
	// through NewUnit or RestoreUnit.
	ErrUnitIsNotConstructed = errors.New("Unit must be created via NewUnit or RestoreUnit")
)

// Unit is one physical unit of a catalog item held by a company. It is the
// entity the whole fulfillment pipeline conserves: units are minted by a
// receipt, reserved against a delivery item, dispatched, and finally either
// delivered out (retired) or released back to the pool.
//
// Invariant: deliveryItemID is non-nil if and only if status is Reserved or
// InTransit.
type Unit struct {
	id        kernel.UUID
	receiptID kernel.UUID
	productID kernel.UUID
	companyID kernel.UUID

	status         UnitStatus
	deliveryItemID *kernel.UUID

	isConstructed bool
}

// NewUnit creates an Available unit minted by the given receipt.
func NewUnit(id, receiptID, productID, companyID kernel.UUID) (*Unit, error) {
	unit := &Unit{
		status:        UnitStatusAvailable,
		isConstructed: true,
	}

	if err := errors.Join(
		unit.setID(id),
		unit.setReceiptID(receiptID),
		unit.setProductID(productID),
		unit.setCompanyID(companyID),
	); err != nil {
		return nil, err
	}

	return unit, nil
}

// RestoreUnit reconstructs a unit from persistence, re-checking the
// link/status invariant.
func RestoreUnit(
	id, receiptID, productID, companyID kernel.UUID,
	status UnitStatus,
	deliveryItemID *kernel.UUID,
) (*Unit, error) {
	unit := &Unit{
		status:         status,
		deliveryItemID: deliveryItemID,
		isConstructed:  true,
	}

	if err := errors.Join(
		unit.setID(id),
		unit.setReceiptID(receiptID),
		unit.setProductID(productID),
		unit.setCompanyID(companyID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := unit.Validate(); err != nil {
		return nil, err
	}

	return unit, nil
}

// Validate ensures the unit was properly constructed and that its
// reservation link is consistent with its status.
func (u *Unit) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUnitIsNotConstructed
	}

	linked := u.deliveryItemID != nil
	if linked != u.status.RequiresReservationLink() {
		return errs.NewValueIsInvalidErrorWithCause("unit reservation link",
			fmt.Errorf("status is %s, linked is %t", u.status, linked))
	}

	return nil
}

// IsEqual compares two units by identifier.
func (u *Unit) IsEqual(other *Unit) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the unit's unique identifier.
func (u *Unit) ID() kernel.UUID {
	return u.id
}

// ReceiptID returns the receipt that minted this unit.
func (u *Unit) ReceiptID() kernel.UUID {
	return u.receiptID
}

// ProductID returns the catalog item this unit is an instance of.
func (u *Unit) ProductID() kernel.UUID {
	return u.productID
}

// CompanyID returns the company holding this unit.
func (u *Unit) CompanyID() kernel.UUID {
	return u.companyID
}

// Status returns the current lifecycle status.
func (u *Unit) Status() UnitStatus {
	return u.status
}

// DeliveryItemID returns the delivery item this unit is reserved for, or nil.
func (u *Unit) DeliveryItemID() *kernel.UUID {
	return u.deliveryItemID
}

// Reserve holds the unit for a delivery item. Legal from Available only.
func (u *Unit) Reserve(deliveryItemID kernel.UUID) error {
	if err := deliveryItemID.Validate(); err != nil {
		return err
	}

	newStatus, err := u.status.Reserve()
	if err != nil {
		return err
	}

	u.status = newStatus
	u.deliveryItemID = &deliveryItemID
	return nil
}

// Dispatch moves a reserved unit into transit with its delivery.
func (u *Unit) Dispatch() error {
	newStatus, err := u.status.Dispatch()
	if err != nil {
		return err
	}

	u.status = newStatus
	return nil
}

// Deliver retires the unit from the supplier's pool once the buyer confirms
// receipt. The reservation link is cleared; ownership has passed.
func (u *Unit) Deliver() error {
	newStatus, err := u.status.Deliver()
	if err != nil {
		return err
	}

	u.status = newStatus
	u.deliveryItemID = nil
	return nil
}

// Release returns the unit to the free pool when its delivery is cancelled,
// clearing the reservation link.
func (u *Unit) Release() error {
	newStatus, err := u.status.Release()
	if err != nil {
		return err
	}

	u.status = newStatus
	u.deliveryItemID = nil
	return nil
}

func (u *Unit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *Unit) setReceiptID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.receiptID = id
	return nil
}

func (u *Unit) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.productID = id
	return nil
}

func (u *Unit) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.companyID = id
	return nil
}
