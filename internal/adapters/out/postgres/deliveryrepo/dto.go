// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence: the shipment header, its lines and the append-only
// tracking history.
package deliveryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. OrderID carries a unique index: an order has at most one
// delivery, which is what makes automatic planning idempotent.
type DeliveryDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	SupplierID     uuid.UUID  `gorm:"type:uuid;index"`
	BuyerID        uuid.UUID  `gorm:"type:uuid;index"`
	Status         int        `gorm:"index"`
	PlannedDate    time.Time
	DispatchedAt   *time.Time
	DeliveredAt    *time.Time
	Carrier        string
	TrackingNumber string
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// DeliveryItemDTO represents the database structure for delivery lines.
// A nil OrderItemID marks a direct shipment line.
type DeliveryItemDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeliveryID        uuid.UUID  `gorm:"type:uuid;index"`
	OrderItemID       *uuid.UUID `gorm:"type:uuid"`
	ProductID         uuid.UUID  `gorm:"type:uuid"`
	QuantityToDeliver int
	UnitPriceAmount   decimal.Decimal `gorm:"type:numeric"`
	UnitPriceCurrency string
	Batch             string
	Expiry            *time.Time
	QuantityDelivered int
	QuantityDamaged   int
	QuantityRejected  int
	Status            int
}

// TableName specifies the database table name for delivery lines.
func (DeliveryItemDTO) TableName() string {
	return "delivery_items"
}

// TrackingEventDTO represents one row of a delivery's tracking history.
// Seq preserves the append order.
type TrackingEventDTO struct {
	DeliveryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey"`
	At         time.Time
	Status     int
	Note       string
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "delivery_tracking_events"
}

// fromDomain converts a delivery domain aggregate to its database
// representation: header, lines and tracking rows.
func fromDomain(d *delivery.Delivery) (DeliveryDTO, []DeliveryItemDTO, []TrackingEventDTO) {
	var orderID *uuid.UUID
	if id := d.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	dto := DeliveryDTO{
		ID:             d.ID().Bytes(),
		OrderID:        orderID,
		SupplierID:     d.SupplierID().Bytes(),
		BuyerID:        d.BuyerID().Bytes(),
		Status:         int(d.Status()),
		PlannedDate:    d.PlannedDate(),
		DispatchedAt:   d.DispatchedAt(),
		DeliveredAt:    d.DeliveredAt(),
		Carrier:        d.Carrier(),
		TrackingNumber: d.TrackingNumber(),
	}

	items := make([]DeliveryItemDTO, 0, len(d.Items()))
	for _, item := range d.Items() {
		var orderItemID *uuid.UUID
		if id := item.Origin().OrderItemID(); id != nil {
			raw := id.Bytes()
			orderItemID = &raw
		}

		items = append(items, DeliveryItemDTO{
			ID:                item.ID().Bytes(),
			DeliveryID:        dto.ID,
			OrderItemID:       orderItemID,
			ProductID:         item.ProductID().Bytes(),
			QuantityToDeliver: item.QuantityToDeliver(),
			UnitPriceAmount:   item.UnitPrice().Amount(),
			UnitPriceCurrency: item.UnitPrice().Currency(),
			Batch:             item.Batch(),
			Expiry:            item.Expiry(),
			QuantityDelivered: item.QuantityDelivered(),
			QuantityDamaged:   item.QuantityDamaged(),
			QuantityRejected:  item.QuantityRejected(),
			Status:            int(item.Status()),
		})
	}

	tracking := make([]TrackingEventDTO, 0, len(d.Tracking()))
	for seq, event := range d.Tracking() {
		tracking = append(tracking, TrackingEventDTO{
			DeliveryID: dto.ID,
			Seq:        seq,
			At:         event.At,
			Status:     int(event.Status),
			Note:       event.Note,
		})
	}

	return dto, items, tracking
}

// toDomain converts database DTOs to a delivery domain aggregate using
// RestoreDelivery.
func toDomain(dto DeliveryDTO, itemDTOs []DeliveryItemDTO, trackingDTOs []TrackingEventDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	items := make([]*delivery.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	tracking := make([]delivery.TrackingEvent, 0, len(trackingDTOs))
	for _, eventDTO := range trackingDTOs {
		tracking = append(tracking, delivery.TrackingEvent{
			At:     eventDTO.At,
			Status: delivery.Status(eventDTO.Status),
			Note:   eventDTO.Note,
		})
	}

	return delivery.RestoreDelivery(
		id, orderID, supplierID, buyerID,
		delivery.Status(dto.Status), dto.PlannedDate,
		dto.DispatchedAt, dto.DeliveredAt,
		dto.Carrier, dto.TrackingNumber,
		items, tracking,
	)
}

func itemToDomain(dto DeliveryItemDTO) (*delivery.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	origin := delivery.DirectOrigin()
	if dto.OrderItemID != nil {
		orderItemID, originErr := kernel.UUIDFromBytes((*dto.OrderItemID)[:])
		if originErr != nil {
			return nil, originErr
		}
		if origin, originErr = delivery.OrderOrigin(orderItemID); originErr != nil {
			return nil, originErr
		}
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceAmount, dto.UnitPriceCurrency)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreItem(
		id, productID,
		dto.QuantityToDeliver, origin,
		unitPrice, dto.Batch, dto.Expiry,
		dto.QuantityDelivered, dto.QuantityDamaged, dto.QuantityRejected,
		delivery.ItemStatus(dto.Status),
	)
}
