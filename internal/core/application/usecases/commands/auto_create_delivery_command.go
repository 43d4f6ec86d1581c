package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAutoCreateDeliveryCommandIsNotConstructed = errors.New(
	"AutoCreateDeliveryCommand must be created via NewAutoCreateDeliveryCommand constructor",
)

// AutoCreateDeliveryCommand requests delivery creation for an order that has
// approved lines. The operation is idempotent: an order that already has a
// delivery keeps it.
type AutoCreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	plannedDate time.Time

	guard guard.ConstructorGuard
}

// NewAutoCreateDeliveryCommand creates a command to plan a delivery from an
// approved order.
func NewAutoCreateDeliveryCommand(orderID kernel.UUID, plannedDate time.Time) (AutoCreateDeliveryCommand, error) {
	command := AutoCreateDeliveryCommand{
		plannedDate: plannedDate,
		guard:       guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return AutoCreateDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AutoCreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAutoCreateDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to plan a delivery for.
func (c AutoCreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PlannedDate returns the planned delivery date.
func (c AutoCreateDeliveryCommand) PlannedDate() time.Time {
	return c.plannedDate
}

func (c *AutoCreateDeliveryCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}
