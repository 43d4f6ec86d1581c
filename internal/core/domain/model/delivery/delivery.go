package delivery

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")
)

// TrackingEvent is one entry of a delivery's append-only history.
type TrackingEvent struct {
	At     time.Time
	Status Status
	Note   string
}

// ReceiptSplit is the buyer's confirmation input for one delivery line: the
// units this confirmation accounts for, not running totals. A follow-up
// confirmation on a partially delivered shipment carries only the remainder;
// settled lines take a zero split.
type ReceiptSplit struct {
	ItemID   kernel.UUID
	Received int
	Damaged  int
	Rejected int
}

// Delivery is the shipment aggregate root. A delivery moves stock from a
// supplier company to a buyer company and may fulfill a purchase order
// (orderID set) or ship directly (orderID nil).
//
// Delivery follows these invariants:
//   - Supplier and buyer are valid, distinct companies
//   - At least one line
//   - Status changes only along the legal transition table
//   - The dispatch timestamp is set exactly once
//   - Tracking history is append-only
type Delivery struct {
	id      kernel.UUID
	orderID *kernel.UUID

	supplierID kernel.UUID
	buyerID    kernel.UUID

	status      Status
	plannedDate time.Time

	dispatchedAt *time.Time
	deliveredAt  *time.Time

	carrier        string
	trackingNumber string

	items    []*Item
	tracking []TrackingEvent

	isConstructed bool
}

// NewDelivery creates a pending delivery with its lines and the initial
// tracking entry. Pass a nil orderID for direct deliveries.
func NewDelivery(
	id kernel.UUID,
	orderID *kernel.UUID,
	supplierID, buyerID kernel.UUID,
	plannedDate time.Time,
	items []*Item,
	createdAt time.Time,
) (*Delivery, error) {
	delivery := &Delivery{
		status:        StatusPending,
		plannedDate:   plannedDate,
		isConstructed: true,
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setOrderID(orderID),
		delivery.setParties(supplierID, buyerID),
		delivery.setItems(items),
	); err != nil {
		return nil, err
	}

	delivery.appendTracking(createdAt, StatusPending, "delivery created")
	return delivery, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	orderID *kernel.UUID,
	supplierID, buyerID kernel.UUID,
	status Status,
	plannedDate time.Time,
	dispatchedAt, deliveredAt *time.Time,
	carrier, trackingNumber string,
	items []*Item,
	tracking []TrackingEvent,
) (*Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	delivery := &Delivery{
		status:         status,
		plannedDate:    plannedDate,
		dispatchedAt:   dispatchedAt,
		deliveredAt:    deliveredAt,
		carrier:        carrier,
		trackingNumber: trackingNumber,
		tracking:       tracking,
		isConstructed:  true,
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setOrderID(orderID),
		delivery.setParties(supplierID, buyerID),
		delivery.setItems(items),
	); err != nil {
		return nil, err
	}

	return delivery, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the purchase order this delivery fulfills, or nil for a
// direct delivery.
func (d *Delivery) OrderID() *kernel.UUID {
	return d.orderID
}

// IsOrderLinked reports whether the delivery fulfills a purchase order.
func (d *Delivery) IsOrderLinked() bool {
	return d.orderID != nil
}

// SupplierID returns the company shipping the delivery.
func (d *Delivery) SupplierID() kernel.UUID {
	return d.supplierID
}

// BuyerID returns the company receiving the delivery.
func (d *Delivery) BuyerID() kernel.UUID {
	return d.buyerID
}

// Status returns the delivery's current lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// PlannedDate returns the planned delivery date.
func (d *Delivery) PlannedDate() time.Time {
	return d.plannedDate
}

// DispatchedAt returns the dispatch timestamp, or nil before dispatch.
func (d *Delivery) DispatchedAt() *time.Time {
	return d.dispatchedAt
}

// DeliveredAt returns the final confirmation timestamp, or nil.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// Carrier returns the carrier name recorded at dispatch.
func (d *Delivery) Carrier() string {
	return d.carrier
}

// TrackingNumber returns the carrier tracking number recorded at dispatch.
func (d *Delivery) TrackingNumber() string {
	return d.trackingNumber
}

// Items returns the delivery lines.
func (d *Delivery) Items() []*Item {
	return d.items
}

// Item returns the line with the given identifier, or an ObjectNotFoundError
// when the line does not belong to this delivery.
func (d *Delivery) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range d.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("deliveryItemId", itemID.String())
}

// ItemIDs returns the identifiers of all delivery lines.
func (d *Delivery) ItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(d.items))
	for _, item := range d.items {
		ids = append(ids, item.ID())
	}
	return ids
}

// Tracking returns the append-only history of the delivery.
func (d *Delivery) Tracking() []TrackingEvent {
	return d.tracking
}

// CanBeDispatchedBy reports whether the acting company may dispatch or cancel
// this delivery. Only the supplier side manages the shipment.
func (d *Delivery) CanBeDispatchedBy(companyID kernel.UUID) bool {
	return d.supplierID.IsEqual(companyID)
}

// CanBeConfirmedBy reports whether the acting company may confirm receipt.
// Only the buyer side is authoritative for what actually arrived.
func (d *Delivery) CanBeConfirmedBy(companyID kernel.UUID) bool {
	return d.buyerID.IsEqual(companyID)
}

// Dispatch moves the delivery from Pending to InTransit, records the carrier
// metadata and stamps the dispatch time once.
func (d *Delivery) Dispatch(at time.Time, carrier, trackingNumber string) error {
	next, err := d.status.TransitionTo(StatusInTransit)
	if err != nil {
		return err
	}

	d.status = next
	d.carrier = carrier
	d.trackingNumber = trackingNumber
	if d.dispatchedAt == nil {
		d.dispatchedAt = &at
	}

	d.appendTracking(at, next, "dispatched")
	return nil
}

// Cancel calls the delivery off. Legal from Pending and InTransit; the caller
// releases the reserved stock in the same unit of work.
func (d *Delivery) Cancel(at time.Time) error {
	if d.status != StatusPending && d.status != StatusInTransit {
		return errs.NewIllegalStateTransitionError(d.status.String(), StatusCancelled.String())
	}

	d.status = StatusCancelled
	d.appendTracking(at, StatusCancelled, "cancelled")
	return nil
}

// ConfirmReceipt records the buyer's per-line receipt split and derives the
// delivery status: Delivered when every line arrived in full,
// PartiallyDelivered otherwise. Legal from InTransit and PartiallyDelivered;
// splits on a follow-up confirmation add to what earlier confirmations
// recorded. Every line must be covered by exactly one split.
func (d *Delivery) ConfirmReceipt(at time.Time, splits []ReceiptSplit) error {
	if d.status != StatusInTransit && d.status != StatusPartiallyDelivered {
		return errs.NewIllegalStateTransitionError(d.status.String(), StatusDelivered.String())
	}
	if len(splits) != len(d.items) {
		return errs.NewValueIsInvalidError("every delivery item needs a receipt split")
	}

	for _, split := range splits {
		item, err := d.Item(split.ItemID)
		if err != nil {
			return err
		}
		if err = item.RecordReceipt(split.Received, split.Damaged, split.Rejected); err != nil {
			return err
		}
	}

	next := StatusDelivered
	for _, item := range d.items {
		if !item.IsFullyDelivered() {
			next = StatusPartiallyDelivered
			break
		}
	}

	// A repeated partial confirmation keeps the status in place.
	if next != d.status {
		var err error
		if next, err = d.status.TransitionTo(next); err != nil {
			return err
		}
	}

	d.status = next
	if next == StatusDelivered {
		d.deliveredAt = &at
	}

	d.appendTracking(at, next, "receipt confirmed")
	return nil
}

func (d *Delivery) appendTracking(at time.Time, status Status, note string) {
	d.tracking = append(d.tracking, TrackingEvent{At: at, Status: status, Note: note})
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setParties(supplierID, buyerID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	if err := buyerID.Validate(); err != nil {
		return err
	}
	if supplierID.IsEqual(buyerID) {
		return errs.NewValueIsInvalidError("supplier and buyer must be different companies")
	}

	d.supplierID = supplierID
	d.buyerID = buyerID
	return nil
}

func (d *Delivery) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("delivery items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	d.items = items
	return nil
}
