package outboxrepo

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// Message is one stored event waiting to be published.
type Message struct {
	ID    kernel.UUID
	Event ports.Event
}

// GormNotificationOutbox implements NotificationOutbox using GORM. The same
// type serves both sides of the pattern: Enqueue runs inside a unit of work,
// the drain methods run on a plain connection from the dispatch job.
type GormNotificationOutbox struct {
	db *gorm.DB
}

// NewGormNotificationOutbox creates a new GORM outbox.
func NewGormNotificationOutbox(db *gorm.DB) *GormNotificationOutbox {
	return &GormNotificationOutbox{db: db}
}

// Enqueue stores an event in the current transaction.
func (o *GormNotificationOutbox) Enqueue(ctx context.Context, event ports.Event) error {
	dto, err := fromEvent(kernel.NewUUID(), event, time.Now().UTC())
	if err != nil {
		return err
	}

	return o.db.WithContext(ctx).Create(&dto).Error
}

// GetUnsent returns up to limit unpublished messages, oldest first.
func (o *GormNotificationOutbox) GetUnsent(ctx context.Context, limit int) ([]Message, error) {
	var dtos []MessageDTO
	err := o.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		event, eventErr := toEvent(dto)
		if eventErr != nil {
			return nil, eventErr
		}

		messages = append(messages, Message{ID: id, Event: event})
	}

	return messages, nil
}

// MarkSent stamps a message as published.
func (o *GormNotificationOutbox) MarkSent(ctx context.Context, id kernel.UUID, at time.Time) error {
	result := o.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", id.Bytes()).
		Update("sent_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
