package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
)

// CreateDirectDeliveryCommandHandler creates a delivery with no purchase
// order linkage and reserves the supplier's stock in the same transaction.
type CreateDirectDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	planner    services.DeliveryPlanner
}

// NewCreateDirectDeliveryCommandHandler creates a handler for direct
// delivery creation.
func NewCreateDirectDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDirectDeliveryCommandHandler {
	return CreateDirectDeliveryCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewDeliveryPlanner(),
	}
}

// Handle processes the direct creation command and returns the new
// delivery's identifier.
func (h *CreateDirectDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDirectDeliveryCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	planned, err := h.planner.PlanDirect(
		cmd.SupplierCompanyID(),
		cmd.BuyerCompanyID(),
		cmd.Lines(),
		cmd.PlannedDate(),
		time.Now(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = reserveDeliveryStock(ctx, uow.StockRepository(), planned); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.DeliveryRepository().Add(ctx, planned); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.NotificationOutbox().Enqueue(ctx, deliveryCreatedEvent(planned)); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return planned.ID(), nil
}
