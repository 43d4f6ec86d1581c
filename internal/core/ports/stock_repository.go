// Package ports defines the persistence and notification contracts of the
// fulfillment core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
)

// AvailableCount is one row of a per-item availability report.
type AvailableCount struct {
	ProductID kernel.UUID
	Count     int
}

// StockRepository defines the persistence contract for the stock ledger:
// receipts and the individually identified units minted from them.
//
// The mutating bulk operations are the ledger primitives behind delivery
// planning, dispatch, cancellation and receipt confirmation. They must run
// inside the unit of work's transaction so multi-item operations stay
// all-or-nothing.
type StockRepository interface {
	// AddReceipt persists a stock receipt together with its minted units.
	AddReceipt(ctx context.Context, receipt *stock.Receipt, units []*stock.Unit) error

	// GetReceipt retrieves a receipt by its unique identifier.
	GetReceipt(ctx context.Context, id kernel.UUID) (*stock.Receipt, error)

	// CountAvailable returns the number of Available units of a catalog item
	// at a company.
	CountAvailable(ctx context.Context, productID, companyID kernel.UUID) (int, error)

	// CountAvailableByProduct returns per-item Available counts for a company.
	CountAvailableByProduct(ctx context.Context, companyID kernel.UUID) ([]AvailableCount, error)

	// ReserveAvailable atomically selects quantity Available units of the
	// item at the company, marks them Reserved and links them to the
	// delivery item. The selection takes row locks so concurrent
	// reservations for the same item and company serialize; when fewer than
	// quantity units are lockable it fails with InsufficientStockError and
	// reserves nothing.
	ReserveAvailable(ctx context.Context, productID, companyID kernel.UUID, quantity int, deliveryItemID kernel.UUID) error

	// TransitionForDeliveryItems bulk-moves every unit linked to one of the
	// delivery items whose status is in fromAllowed to the target status.
	// Units outside fromAllowed are left untouched. Returns how many units
	// actually moved.
	TransitionForDeliveryItems(ctx context.Context, deliveryItemIDs []kernel.UUID, fromAllowed []stock.UnitStatus, to stock.UnitStatus) (int, error)

	// ReleaseForDeliveryItems returns every Reserved or InTransit unit
	// linked to one of the delivery items back to Available and clears the
	// link. Returns how many units were released.
	ReleaseForDeliveryItems(ctx context.Context, deliveryItemIDs []kernel.UUID) (int, error)
}
