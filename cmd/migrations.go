package cmd

import (
	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/outboxrepo"
	"fulfillment/internal/adapters/out/postgres/stockrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for every persisted type.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&stockrepo.ReceiptDTO{},
		&stockrepo.UnitDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.DeliveryItemDTO{},
		&deliveryrepo.TrackingEventDTO{},
		&outboxrepo.MessageDTO{},
	)
}
