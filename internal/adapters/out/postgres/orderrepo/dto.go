// Package orderrepo provides data transfer objects and mapping functions for
// purchase order persistence. This package implements the repository pattern
// for the order domain aggregate, handling the conversion between domain
// entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines live in their own table; the overall approval status is derived in
// the domain and never stored.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID     uuid.UUID `gorm:"type:uuid;index"`
	SupplierID  uuid.UUID `gorm:"type:uuid;index"`
	DeliveredAt *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for order lines.
type OrderItemDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	ProductID         uuid.UUID `gorm:"type:uuid"`
	Quantity          int
	QuantityIssued    int
	UnitPriceAmount   decimal.Decimal `gorm:"type:numeric"`
	UnitPriceCurrency string
	Batch             string
	Expiry            *time.Time
	Status            int
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, one DTO per line.
func fromDomain(o *order.Order) (OrderDTO, []OrderItemDTO) {
	dto := OrderDTO{
		ID:          o.ID().Bytes(),
		BuyerID:     o.BuyerID().Bytes(),
		SupplierID:  o.SupplierID().Bytes(),
		DeliveredAt: o.DeliveredAt(),
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:                item.ID().Bytes(),
			OrderID:           dto.ID,
			ProductID:         item.ProductID().Bytes(),
			Quantity:          item.Quantity(),
			QuantityIssued:    item.QuantityIssued(),
			UnitPriceAmount:   item.UnitPrice().Amount(),
			UnitPriceCurrency: item.UnitPrice().Currency(),
			Batch:             item.Batch(),
			Expiry:            item.Expiry(),
			Status:            int(item.Status()),
		})
	}

	return dto, items
}

// toDomain converts database DTOs to an order domain aggregate.
// Reconstructs the complete aggregate including line decisions using
// RestoreOrder.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, buyerID, supplierID, items, dto.DeliveredAt)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceAmount, dto.UnitPriceCurrency)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id, productID,
		dto.Quantity, dto.QuantityIssued,
		unitPrice, dto.Batch, dto.Expiry,
		order.ItemStatus(dto.Status),
	)
}
