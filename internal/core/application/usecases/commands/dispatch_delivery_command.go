package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrDispatchDeliveryCommandIsNotConstructed = errors.New(
	"DispatchDeliveryCommand must be created via NewDispatchDeliveryCommand constructor",
)

// DispatchDeliveryCommand represents the supplier handing a pending delivery
// to a carrier.
type DispatchDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID     kernel.UUID
	actorCompanyID kernel.UUID
	carrier        string
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewDispatchDeliveryCommand creates a command to dispatch a delivery.
// The carrier name is required; the tracking number may be empty.
func NewDispatchDeliveryCommand(
	deliveryID, actorCompanyID kernel.UUID,
	carrier, trackingNumber string,
) (DispatchDeliveryCommand, error) {
	command := DispatchDeliveryCommand{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setActorCompanyID(actorCompanyID),
		command.setCarrier(carrier),
	); err != nil {
		return DispatchDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDispatchDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to dispatch.
func (c DispatchDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ActorCompanyID returns the company dispatching the delivery.
func (c DispatchDeliveryCommand) ActorCompanyID() kernel.UUID {
	return c.actorCompanyID
}

// Carrier returns the carrier taking the shipment.
func (c DispatchDeliveryCommand) Carrier() string {
	return c.carrier
}

// TrackingNumber returns the carrier tracking number, if any.
func (c DispatchDeliveryCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *DispatchDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *DispatchDeliveryCommand) setActorCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorCompanyID = id
	return nil
}

func (c *DispatchDeliveryCommand) setCarrier(carrier string) error {
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	c.carrier = carrier
	return nil
}
