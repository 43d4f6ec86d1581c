// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetAvailableStockQueryIsNotConstructed = errors.New(
		"GetAvailableStockQuery must be created via NewGetAvailableStockQuery constructor",
	)
)

// GetAvailableStockQuery retrieves per-item Available unit counts for one
// company. Availability is always company and item scoped; which order a
// receipt originated from does not matter once the stock is in the pool.
type GetAvailableStockQuery struct {
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableStockQuery creates a query for a company's available stock.
func NewGetAvailableStockQuery(companyID kernel.UUID) (GetAvailableStockQuery, error) {
	if err := companyID.Validate(); err != nil {
		return GetAvailableStockQuery{}, err
	}

	return GetAvailableStockQuery{
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableStockQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableStockQueryIsNotConstructed)
}

// CompanyID returns the company whose stock is reported.
func (q GetAvailableStockQuery) CompanyID() kernel.UUID {
	return q.companyID
}

// GetAvailableStockQueryResponse is one row of the availability report.
type GetAvailableStockQueryResponse struct {
	ProductID      kernel.UUID
	AvailableUnits int
}
