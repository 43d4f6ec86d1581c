package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelDeliveryCommandIsNotConstructed = errors.New(
	"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
)

// CancelDeliveryCommand represents the supplier calling off a delivery that
// has not been received yet.
type CancelDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID     kernel.UUID
	actorCompanyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelDeliveryCommand creates a command to cancel a delivery.
func NewCancelDeliveryCommand(deliveryID, actorCompanyID kernel.UUID) (CancelDeliveryCommand, error) {
	command := CancelDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setActorCompanyID(actorCompanyID),
	); err != nil {
		return CancelDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to cancel.
func (c CancelDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ActorCompanyID returns the company cancelling the delivery.
func (c CancelDeliveryCommand) ActorCompanyID() kernel.UUID {
	return c.actorCompanyID
}

func (c *CancelDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *CancelDeliveryCommand) setActorCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorCompanyID = id
	return nil
}
