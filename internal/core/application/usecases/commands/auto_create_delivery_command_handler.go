package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
)

// defaultDeliveryLeadTime is the planned date offset used when the approval
// flow triggers delivery creation without an explicit date.
const defaultDeliveryLeadTime = 72 * time.Hour

// AutoCreateDeliveryCommandHandler plans a delivery for an order with
// approved lines and reserves the matching stock, all in one transaction.
//
// The operation is idempotent: when the order already has a delivery, its
// identifier is returned and nothing changes. Reservation is all-or-nothing;
// insufficient stock on any line aborts the whole creation.
type AutoCreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	planner    services.DeliveryPlanner
}

// NewAutoCreateDeliveryCommandHandler creates a handler for automatic
// delivery creation.
func NewAutoCreateDeliveryCommandHandler(uowFactory UoWFactory) AutoCreateDeliveryCommandHandler {
	return AutoCreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewDeliveryPlanner(),
	}
}

// Handle processes the auto-creation command and returns the identifier of
// the delivery covering the order, whether it was created now or earlier.
func (h *AutoCreateDeliveryCommandHandler) Handle(ctx context.Context, cmd AutoCreateDeliveryCommand) (kernel.UUID, error) {
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

	deliveryRepo := uow.DeliveryRepository()

	existing, err := deliveryRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if existing != nil {
		return existing.ID(), nil
	}

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	planned, err := h.planner.PlanFromOrder(o, cmd.PlannedDate(), time.Now(), nil)
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

// AutoCreateForOrder satisfies the approval flow's DeliveryAutoCreator hook
// with a default planned date.
func (h *AutoCreateDeliveryCommandHandler) AutoCreateForOrder(ctx context.Context, orderID kernel.UUID) (kernel.UUID, error) {
	cmd, err := NewAutoCreateDeliveryCommand(orderID, time.Now().Add(defaultDeliveryLeadTime))
	if err != nil {
		return kernel.UUID{}, err
	}
	return h.Handle(ctx, cmd)
}
