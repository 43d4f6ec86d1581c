package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// DeliveryAutoCreator is the approval flow's hook into delivery planning.
// It is invoked after a decision pushes the order into an approved aggregate
// state, and must be idempotent for orders that already have a delivery.
type DeliveryAutoCreator interface {
	AutoCreateForOrder(ctx context.Context, orderID kernel.UUID) (kernel.UUID, error)
}

// SetOrderItemStatusCommandHandler records the buyer's decision on an order
// line, recomputes the derived aggregate status in the same unit of work and
// triggers delivery auto-creation when approvals exist.
//
// The decision commits before auto-creation runs. A planning failure (for
// example insufficient stock) therefore never undoes the recorded decision;
// it is surfaced to the caller who can retry the planning step.
type SetOrderItemStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	autoCreator DeliveryAutoCreator
}

// NewSetOrderItemStatusCommandHandler creates a handler for approval
// decisions.
func NewSetOrderItemStatusCommandHandler(
	uowFactory OrderUoWFactory,
	autoCreator DeliveryAutoCreator,
) SetOrderItemStatusCommandHandler {
	return SetOrderItemStatusCommandHandler{
		uowFactory:  uowFactory,
		autoCreator: autoCreator,
	}
}

// Handle processes the approval decision. Only the buyer company may decide
// on its order's lines.
func (h *SetOrderItemStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderItemStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hasApprovals, err := h.recordDecision(ctx, cmd)
	if err != nil {
		return err
	}

	if hasApprovals {
		if _, err = h.autoCreator.AutoCreateForOrder(ctx, cmd.OrderID()); err != nil {
			return err
		}
	}

	return nil
}

func (h *SetOrderItemStatusCommandHandler) recordDecision(ctx context.Context, cmd SetOrderItemStatusCommand) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	if !o.BuyerID().IsEqual(cmd.ActorCompanyID()) {
		return false, errs.NewForbiddenError(cmd.ActorCompanyID().String(), "decide order item")
	}

	if err = o.SetItemStatus(cmd.ItemID(), cmd.Decision()); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	orderID := o.ID()
	event := ports.Event{
		Kind:                 ports.EventKindOrderItemDecided,
		PurchaseOrderID:      &orderID,
		ActorCompanyID:       o.BuyerID(),
		CounterpartCompanyID: o.SupplierID(),
		Summary: map[string]string{
			"itemId":        cmd.ItemID().String(),
			"decision":      cmd.Decision().String(),
			"overallStatus": o.OverallStatus().String(),
		},
	}
	if err = uow.NotificationOutbox().Enqueue(ctx, event); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return o.OverallStatus().HasApprovals(), nil
}
