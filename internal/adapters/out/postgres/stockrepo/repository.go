package stockrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddReceipt saves a receipt and its minted units to the database.
func (r *GormStockRepository) AddReceipt(
	ctx context.Context,
	receipt *stock.Receipt,
	units []*stock.Unit,
) error {
	if err := receipt.Validate(); err != nil {
		return err
	}

	dto := receiptFromDomain(receipt)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if len(units) > 0 {
		unitDTOs := make([]UnitDTO, 0, len(units))
		for _, unit := range units {
			if err := unit.Validate(); err != nil {
				return err
			}
			unitDTOs = append(unitDTOs, unitFromDomain(unit))
		}

		if err := r.db.WithContext(ctx).Create(&unitDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(receipt.ID(), receipt)
	return nil
}

// GetReceipt retrieves a receipt by ID.
func (r *GormStockRepository) GetReceipt(ctx context.Context, id kernel.UUID) (*stock.Receipt, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReceiptDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stockReceipt", id.String())
		}
		return nil, err
	}

	return receiptToDomain(dto)
}

// CountAvailable returns the number of Available units of a catalog item at
// a company.
func (r *GormStockRepository) CountAvailable(
	ctx context.Context,
	productID, companyID kernel.UUID,
) (int, error) {
	if err := errors.Join(productID.Validate(), companyID.Validate()); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&UnitDTO{}).
		Where("product_id = ? AND company_id = ? AND status = ?",
			productID.Bytes(), companyID.Bytes(), int(stock.UnitStatusAvailable)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// CountAvailableByProduct returns per-item Available counts for a company.
func (r *GormStockRepository) CountAvailableByProduct(
	ctx context.Context,
	companyID kernel.UUID,
) ([]ports.AvailableCount, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).
		Model(&UnitDTO{}).
		Select("product_id, COUNT(*)").
		Where("company_id = ? AND status = ?", companyID.Bytes(), int(stock.UnitStatusAvailable)).
		Group("product_id").
		Order("product_id").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]ports.AvailableCount, 0)
	for rows.Next() {
		var productID uuid.UUID
		var count ports.AvailableCount

		if err = rows.Scan(&productID, &count.Count); err != nil {
			return nil, err
		}

		if count.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}

		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// ReserveAvailable locks quantity Available units of the item at the company
// and marks them Reserved for the delivery item. The SKIP LOCKED selection
// keeps concurrent reservations from blocking on each other; whichever
// transaction locks a row owns it, and a shortfall fails the whole call
// without reserving anything.
func (r *GormStockRepository) ReserveAvailable(
	ctx context.Context,
	productID, companyID kernel.UUID,
	quantity int,
	deliveryItemID kernel.UUID,
) error {
	if err := errors.Join(
		productID.Validate(),
		companyID.Validate(),
		deliveryItemID.Validate(),
	); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsRequiredError("quantity")
	}

	var lockedIDs []uuid.UUID
	err := r.db.WithContext(ctx).Raw(`
		SELECT id FROM stock_units
		WHERE product_id = ? AND company_id = ? AND status = ?
		ORDER BY id
		LIMIT ?
		FOR UPDATE SKIP LOCKED
	`, productID.Bytes(), companyID.Bytes(), int(stock.UnitStatusAvailable), quantity).
		Scan(&lockedIDs).Error
	if err != nil {
		return err
	}

	if len(lockedIDs) < quantity {
		return errs.NewInsufficientStockError(productID.String(), len(lockedIDs), quantity)
	}

	result := r.db.WithContext(ctx).
		Model(&UnitDTO{}).
		Where("id IN ?", lockedIDs).
		Updates(map[string]any{
			"status":           int(stock.UnitStatusReserved),
			"delivery_item_id": deliveryItemID.Bytes(),
		})
	if result.Error != nil {
		return result.Error
	}
	if int(result.RowsAffected) != quantity {
		return errs.NewInsufficientStockError(productID.String(), int(result.RowsAffected), quantity)
	}

	return nil
}

// TransitionForDeliveryItems bulk-moves every unit linked to the delivery
// items whose status is in fromAllowed to the target status. The link is
// cleared when the target status does not carry a reservation.
func (r *GormStockRepository) TransitionForDeliveryItems(
	ctx context.Context,
	deliveryItemIDs []kernel.UUID,
	fromAllowed []stock.UnitStatus,
	to stock.UnitStatus,
) (int, error) {
	if len(deliveryItemIDs) == 0 {
		return 0, errs.NewValueIsRequiredError("deliveryItemIds")
	}
	if len(fromAllowed) == 0 {
		return 0, errs.NewValueIsRequiredError("fromAllowed")
	}
	if err := to.Validate(); err != nil {
		return 0, err
	}

	updates := map[string]any{"status": int(to)}
	if !to.RequiresReservationLink() {
		updates["delivery_item_id"] = nil
	}

	result := r.db.WithContext(ctx).
		Model(&UnitDTO{}).
		Where("delivery_item_id IN ? AND status IN ?",
			uuidsToBytes(deliveryItemIDs), statusesToInts(fromAllowed)).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}

// ReleaseForDeliveryItems returns every Reserved or InTransit unit linked to
// the delivery items back to Available and clears the link.
func (r *GormStockRepository) ReleaseForDeliveryItems(
	ctx context.Context,
	deliveryItemIDs []kernel.UUID,
) (int, error) {
	return r.TransitionForDeliveryItems(
		ctx,
		deliveryItemIDs,
		[]stock.UnitStatus{stock.UnitStatusReserved, stock.UnitStatusInTransit},
		stock.UnitStatusAvailable,
	)
}

func uuidsToBytes(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}

func statusesToInts(statuses []stock.UnitStatus) []int {
	ints := make([]int, 0, len(statuses))
	for _, status := range statuses {
		ints = append(ints, int(status))
	}
	return ints
}
