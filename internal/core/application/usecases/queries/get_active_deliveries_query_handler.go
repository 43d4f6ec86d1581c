package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves non-terminal deliveries for a
// company from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery
// queries. Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query and returns the company's deliveries in Pending,
// InTransit or PartiallyDelivered status, sorted by planned date.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)
	companyID := query.CompanyID().Bytes()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.supplier_id,
			d.buyer_id,
			d.status,
			d.planned_date,
			(SELECT COUNT(*) FROM delivery_items i WHERE i.delivery_id = d.id)
		FROM deliveries d
		WHERE (d.supplier_id = ? OR d.buyer_id = ?)
		  AND d.status IN (?, ?, ?)
		ORDER BY d.planned_date, d.id
	`,
		companyID, companyID,
		int(delivery.StatusPending), int(delivery.StatusInTransit), int(delivery.StatusPartiallyDelivered),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveDeliveriesQueryResponse
		var id, supplierID, buyerID uuid.UUID
		var orderID *uuid.UUID
		var status int
		var plannedDate time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&supplierID,
			&buyerID,
			&status,
			&plannedDate,
			&resp.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
			return nil, err
		}
		if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}
		if orderID != nil {
			linked, idErr := kernel.UUIDFromBytes((*orderID)[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.OrderID = &linked
		}

		resp.Status = delivery.Status(status)
		resp.PlannedDate = plannedDate

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
