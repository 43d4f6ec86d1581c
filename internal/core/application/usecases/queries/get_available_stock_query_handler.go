package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableStockQueryHandler reports a company's free stock pool.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAvailableStockQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableStockQueryHandler creates a handler for availability queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableStockQueryHandler(db *gorm.DB) GetAvailableStockQueryHandler {
	return GetAvailableStockQueryHandler{db: db}
}

// Handle executes the query and returns per-item Available unit counts for
// the company, sorted by item for consistent output.
func (h GetAvailableStockQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableStockQuery,
) ([]GetAvailableStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make([]GetAvailableStockQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			COUNT(*)
		FROM stock_units
		WHERE company_id = ? AND status = ?
		GROUP BY product_id
		ORDER BY product_id
	`, query.CompanyID().Bytes(), int(stock.UnitStatusAvailable)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var count GetAvailableStockQueryResponse
		var productID uuid.UUID

		if err = rows.Scan(&productID, &count.AvailableUnits); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		count.ProductID = id

		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
