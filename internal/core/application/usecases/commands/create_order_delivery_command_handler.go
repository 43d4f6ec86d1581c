package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// CreateOrderDeliveryCommandHandler creates a delivery for an approved order
// at the supplier's explicit request, reserving the matching stock in the
// same transaction. An order that already has a delivery fails with
// DuplicateOperationError; the supplier should work with the existing one.
type CreateOrderDeliveryCommandHandler struct {
	uowFactory UoWFactory
	planner    services.DeliveryPlanner
}

// NewCreateOrderDeliveryCommandHandler creates a handler for explicit
// delivery creation.
func NewCreateOrderDeliveryCommandHandler(uowFactory UoWFactory) CreateOrderDeliveryCommandHandler {
	return CreateOrderDeliveryCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewDeliveryPlanner(),
	}
}

// Handle processes the explicit creation command and returns the new
// delivery's identifier. Only the supplier company may create the delivery.
func (h *CreateOrderDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateOrderDeliveryCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if !o.SupplierID().IsEqual(cmd.ActorCompanyID()) {
		return kernel.UUID{}, errs.NewForbiddenError(cmd.ActorCompanyID().String(), "create delivery")
	}

	deliveryRepo := uow.DeliveryRepository()

	existing, err := deliveryRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if existing != nil {
		return kernel.UUID{}, errs.NewDuplicateOperationError("orderId", cmd.OrderID().String())
	}

	planned, err := h.planner.PlanFromOrder(o, cmd.PlannedDate(), time.Now(), cmd.Overrides())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = reserveDeliveryStock(ctx, uow.StockRepository(), planned); err != nil {
		return kernel.UUID{}, err
	}

	if err = deliveryRepo.Add(ctx, planned); err != nil {
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
