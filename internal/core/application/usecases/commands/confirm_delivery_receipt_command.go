package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmDeliveryReceiptCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryReceiptCommand must be created via NewConfirmDeliveryReceiptCommand constructor",
)

// ConfirmDeliveryReceiptCommand represents the buyer's authoritative record
// of what actually arrived: per delivery line, how many units were received,
// damaged and rejected.
type ConfirmDeliveryReceiptCommand struct { //nolint:recvcheck //using for validation
	deliveryID     kernel.UUID
	actorCompanyID kernel.UUID
	splits         []delivery.ReceiptSplit

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryReceiptCommand creates a command to confirm receipt.
// Every quantity must be non-negative and every line needs a split.
func NewConfirmDeliveryReceiptCommand(
	deliveryID, actorCompanyID kernel.UUID,
	splits []delivery.ReceiptSplit,
) (ConfirmDeliveryReceiptCommand, error) {
	command := ConfirmDeliveryReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setActorCompanyID(actorCompanyID),
		command.setSplits(splits),
	); err != nil {
		return ConfirmDeliveryReceiptCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryReceiptCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryReceiptCommandIsNotConstructed)
}

// DeliveryID returns the delivery being confirmed.
func (c ConfirmDeliveryReceiptCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ActorCompanyID returns the company confirming receipt.
func (c ConfirmDeliveryReceiptCommand) ActorCompanyID() kernel.UUID {
	return c.actorCompanyID
}

// Splits returns the per-line receipt outcome.
func (c ConfirmDeliveryReceiptCommand) Splits() []delivery.ReceiptSplit {
	return c.splits
}

func (c *ConfirmDeliveryReceiptCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *ConfirmDeliveryReceiptCommand) setActorCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorCompanyID = id
	return nil
}

func (c *ConfirmDeliveryReceiptCommand) setSplits(splits []delivery.ReceiptSplit) error {
	if len(splits) == 0 {
		return errs.NewValueIsRequiredError("receipt splits")
	}

	for _, split := range splits {
		if err := split.ItemID.Validate(); err != nil {
			return err
		}
		if split.Received < 0 || split.Damaged < 0 || split.Rejected < 0 {
			return errs.NewValueIsInvalidError("receipt quantities must not be negative")
		}
	}

	c.splits = splits
	return nil
}
