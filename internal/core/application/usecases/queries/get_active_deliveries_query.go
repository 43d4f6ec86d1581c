package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
		"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
	)
)

// GetActiveDeliveriesQuery retrieves the deliveries a company is involved in,
// as supplier or buyer, that still have work in flight: Pending, InTransit or
// PartiallyDelivered.
type GetActiveDeliveriesQuery struct {
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query for a company's active
// deliveries.
func NewGetActiveDeliveriesQuery(companyID kernel.UUID) (GetActiveDeliveriesQuery, error) {
	if err := companyID.Validate(); err != nil {
		return GetActiveDeliveriesQuery{}, err
	}

	return GetActiveDeliveriesQuery{
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// CompanyID returns the company whose deliveries are reported.
func (q GetActiveDeliveriesQuery) CompanyID() kernel.UUID {
	return q.companyID
}

// GetActiveDeliveriesQueryResponse is one active delivery in the read model.
type GetActiveDeliveriesQueryResponse struct {
	ID          kernel.UUID
	OrderID     *kernel.UUID
	SupplierID  kernel.UUID
	BuyerID     kernel.UUID
	Status      delivery.Status
	PlannedDate time.Time
	ItemCount   int
}
