package deliveryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery with its lines and tracking history to the
// database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, itemDTOs, trackingDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&itemDTOs).Error; err != nil {
		return err
	}
	if len(trackingDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&trackingDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery to the database. The header and every
// line are written back; tracking rows past the stored history are appended,
// the history itself is never rewritten.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, itemDTOs, trackingDTOs := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "DispatchedAt", "DeliveredAt", "Carrier", "TrackingNumber").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for _, itemDTO := range itemDTOs {
		itemResult := r.db.WithContext(ctx).
			Model(&DeliveryItemDTO{}).
			Where("id = ?", itemDTO.ID).
			Select("QuantityDelivered", "QuantityDamaged", "QuantityRejected", "Status").
			Updates(&itemDTO)
		if itemResult.Error != nil {
			return itemResult.Error
		}
		if itemResult.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
	}

	var stored int64
	err := r.db.WithContext(ctx).
		Model(&TrackingEventDTO{}).
		Where("delivery_id = ?", dto.ID).
		Count(&stored).Error
	if err != nil {
		return err
	}
	if appended := trackingDTOs[stored:]; len(appended) > 0 {
		if err = r.db.WithContext(ctx).Create(&appended).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery with its lines and tracking history by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryId", id.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetByOrderID retrieves the delivery fulfilling a purchase order, or
// (nil, nil) when none exists yet.
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

func (r *GormDeliveryRepository) load(ctx context.Context, dto DeliveryDTO) (*delivery.Delivery, error) {
	var itemDTOs []DeliveryItemDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&itemDTOs, "delivery_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	var trackingDTOs []TrackingEventDTO
	err = r.db.WithContext(ctx).
		Order("seq").
		Find(&trackingDTOs, "delivery_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, itemDTOs, trackingDTOs)
}
