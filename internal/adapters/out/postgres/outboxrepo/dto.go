// Package outboxrepo persists notification events in the same transaction as
// the business operation that produced them. A background job drains the
// unsent rows to the notifier, so an event is published if and only if its
// operation committed.
package outboxrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO represents the database structure for outbox messages.
type MessageDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind                 string
	PurchaseOrderID      *uuid.UUID `gorm:"type:uuid"`
	DeliveryID           *uuid.UUID `gorm:"type:uuid"`
	ActorCompanyID       uuid.UUID  `gorm:"type:uuid"`
	CounterpartCompanyID uuid.UUID  `gorm:"type:uuid"`
	Summary              string
	CreatedAt            time.Time
	SentAt               *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "notification_outbox"
}

func fromEvent(id kernel.UUID, event ports.Event, createdAt time.Time) (MessageDTO, error) {
	summary, err := json.Marshal(event.Summary)
	if err != nil {
		return MessageDTO{}, err
	}

	var purchaseOrderID *uuid.UUID
	if event.PurchaseOrderID != nil {
		raw := event.PurchaseOrderID.Bytes()
		purchaseOrderID = &raw
	}

	var deliveryID *uuid.UUID
	if event.DeliveryID != nil {
		raw := event.DeliveryID.Bytes()
		deliveryID = &raw
	}

	return MessageDTO{
		ID:                   id.Bytes(),
		Kind:                 string(event.Kind),
		PurchaseOrderID:      purchaseOrderID,
		DeliveryID:           deliveryID,
		ActorCompanyID:       event.ActorCompanyID.Bytes(),
		CounterpartCompanyID: event.CounterpartCompanyID.Bytes(),
		Summary:              string(summary),
		CreatedAt:            createdAt,
	}, nil
}

func toEvent(dto MessageDTO) (ports.Event, error) {
	event := ports.Event{Kind: ports.EventKind(dto.Kind)}

	var err error
	if event.ActorCompanyID, err = kernel.UUIDFromBytes(dto.ActorCompanyID[:]); err != nil {
		return ports.Event{}, err
	}
	// Intake events carry no counterpart; the column holds the nil uuid then.
	if dto.CounterpartCompanyID != uuid.Nil {
		if event.CounterpartCompanyID, err = kernel.UUIDFromBytes(dto.CounterpartCompanyID[:]); err != nil {
			return ports.Event{}, err
		}
	}

	if dto.PurchaseOrderID != nil {
		id, idErr := kernel.UUIDFromBytes((*dto.PurchaseOrderID)[:])
		if idErr != nil {
			return ports.Event{}, idErr
		}
		event.PurchaseOrderID = &id
	}
	if dto.DeliveryID != nil {
		id, idErr := kernel.UUIDFromBytes((*dto.DeliveryID)[:])
		if idErr != nil {
			return ports.Event{}, idErr
		}
		event.DeliveryID = &id
	}

	if dto.Summary != "" {
		if err = json.Unmarshal([]byte(dto.Summary), &event.Summary); err != nil {
			return ports.Event{}, err
		}
	}

	return event, nil
}
