package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderDeliveryCommandIsNotConstructed = errors.New(
	"CreateOrderDeliveryCommand must be created via NewCreateOrderDeliveryCommand constructor",
)

// CreateOrderDeliveryCommand is the supplier's explicit request to create a
// delivery for an approved order, optionally overriding shipment details of
// individual lines. Unlike the automatic path, an already existing delivery
// makes this command fail.
type CreateOrderDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actorCompanyID kernel.UUID
	plannedDate    time.Time
	overrides      []services.LineOverride

	guard guard.ConstructorGuard
}

// NewCreateOrderDeliveryCommand creates a command for explicit delivery
// creation from an order.
func NewCreateOrderDeliveryCommand(
	orderID, actorCompanyID kernel.UUID,
	plannedDate time.Time,
	overrides []services.LineOverride,
) (CreateOrderDeliveryCommand, error) {
	command := CreateOrderDeliveryCommand{
		plannedDate: plannedDate,
		overrides:   overrides,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorCompanyID(actorCompanyID),
	); err != nil {
		return CreateOrderDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to create a delivery for.
func (c CreateOrderDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorCompanyID returns the company requesting the delivery.
func (c CreateOrderDeliveryCommand) ActorCompanyID() kernel.UUID {
	return c.actorCompanyID
}

// PlannedDate returns the planned delivery date.
func (c CreateOrderDeliveryCommand) PlannedDate() time.Time {
	return c.plannedDate
}

// Overrides returns the per-line shipment detail overrides.
func (c CreateOrderDeliveryCommand) Overrides() []services.LineOverride {
	return c.overrides
}

func (c *CreateOrderDeliveryCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderDeliveryCommand) setActorCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorCompanyID = id
	return nil
}
