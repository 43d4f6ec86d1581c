package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSetOrderItemStatusCommandIsNotConstructed = errors.New(
	"SetOrderItemStatusCommand must be created via NewSetOrderItemStatusCommand constructor",
)

// SetOrderItemStatusCommand represents the buyer's accept or reject decision
// on one purchase order line.
type SetOrderItemStatusCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	itemID         kernel.UUID
	decision       order.ItemStatus
	actorCompanyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetOrderItemStatusCommand creates a command to record an approval
// decision. The decision must be Approved or Rejected.
func NewSetOrderItemStatusCommand(
	orderID, itemID kernel.UUID,
	decision order.ItemStatus,
	actorCompanyID kernel.UUID,
) (SetOrderItemStatusCommand, error) {
	command := SetOrderItemStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemID(itemID),
		command.setDecision(decision),
		command.setActorCompanyID(actorCompanyID),
	); err != nil {
		return SetOrderItemStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderItemStatusCommandIsNotConstructed)
}

// OrderID returns the order the decided line belongs to.
func (c SetOrderItemStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the decided order line.
func (c SetOrderItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Decision returns the buyer's decision.
func (c SetOrderItemStatusCommand) Decision() order.ItemStatus {
	return c.decision
}

// ActorCompanyID returns the company recording the decision.
func (c SetOrderItemStatusCommand) ActorCompanyID() kernel.UUID {
	return c.actorCompanyID
}

func (c *SetOrderItemStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *SetOrderItemStatusCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.itemID = id
	return nil
}

func (c *SetOrderItemStatusCommand) setDecision(decision order.ItemStatus) error {
	if !decision.IsDecision() {
		return errs.NewValueIsInvalidError("decision must be Approved or Rejected")
	}
	c.decision = decision
	return nil
}

func (c *SetOrderItemStatusCommand) setActorCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorCompanyID = id
	return nil
}
