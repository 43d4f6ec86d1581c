// Package stockrepo provides data transfer objects and mapping functions for
// stock ledger persistence: receipts and the individually identified units
// minted from them.
package stockrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptDTO represents the database structure for stock receipts.
type ReceiptDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID            uuid.UUID `gorm:"type:uuid;index"`
	CompanyID            uuid.UUID `gorm:"type:uuid;index"`
	Quantity             int
	UnitCostAmount       decimal.Decimal `gorm:"type:numeric"`
	UnitCostCurrency     string
	Batch                string
	Expiry               *time.Time
	OriginDeliveryItemID *uuid.UUID `gorm:"type:uuid"`
	ReceivedAt           time.Time
}

// TableName specifies the database table name for stock receipts.
func (ReceiptDTO) TableName() string {
	return "stock_receipts"
}

// UnitDTO represents the database structure for stock units. Status and the
// delivery-item link are indexed because reservation and bulk transitions
// select on them.
type UnitDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ReceiptID      uuid.UUID  `gorm:"type:uuid;index"`
	ProductID      uuid.UUID  `gorm:"type:uuid;index:idx_units_availability"`
	CompanyID      uuid.UUID  `gorm:"type:uuid;index:idx_units_availability"`
	Status         int        `gorm:"index:idx_units_availability"`
	DeliveryItemID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for stock units.
func (UnitDTO) TableName() string {
	return "stock_units"
}

func receiptFromDomain(receipt *stock.Receipt) ReceiptDTO {
	var originID *uuid.UUID
	if id := receipt.OriginDeliveryItemID(); id != nil {
		raw := id.Bytes()
		originID = &raw
	}

	return ReceiptDTO{
		ID:                   receipt.ID().Bytes(),
		ProductID:            receipt.ProductID().Bytes(),
		CompanyID:            receipt.CompanyID().Bytes(),
		Quantity:             receipt.Quantity(),
		UnitCostAmount:       receipt.UnitCost().Amount(),
		UnitCostCurrency:     receipt.UnitCost().Currency(),
		Batch:                receipt.Batch(),
		Expiry:               receipt.Expiry(),
		OriginDeliveryItemID: originID,
		ReceivedAt:           receipt.ReceivedAt(),
	}
}

func receiptToDomain(dto ReceiptDTO) (*stock.Receipt, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	unitCost, err := kernel.NewMoney(dto.UnitCostAmount, dto.UnitCostCurrency)
	if err != nil {
		return nil, err
	}

	var originID *kernel.UUID
	if dto.OriginDeliveryItemID != nil {
		oID, originErr := kernel.UUIDFromBytes((*dto.OriginDeliveryItemID)[:])
		if originErr != nil {
			return nil, originErr
		}
		originID = &oID
	}

	return stock.RestoreReceipt(
		id, productID, companyID,
		dto.Quantity, unitCost, dto.Batch, dto.Expiry,
		originID, dto.ReceivedAt,
	)
}

func unitFromDomain(unit *stock.Unit) UnitDTO {
	var deliveryItemID *uuid.UUID
	if id := unit.DeliveryItemID(); id != nil {
		raw := id.Bytes()
		deliveryItemID = &raw
	}

	return UnitDTO{
		ID:             unit.ID().Bytes(),
		ReceiptID:      unit.ReceiptID().Bytes(),
		ProductID:      unit.ProductID().Bytes(),
		CompanyID:      unit.CompanyID().Bytes(),
		Status:         int(unit.Status()),
		DeliveryItemID: deliveryItemID,
	}
}
