package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateDirectDeliveryCommandIsNotConstructed = errors.New(
	"CreateDirectDeliveryCommand must be created via NewCreateDirectDeliveryCommand constructor",
)

// CreateDirectDeliveryCommand is the supplier's request to ship stock to a
// buyer without a purchase order behind it.
type CreateDirectDeliveryCommand struct { //nolint:recvcheck //using for validation
	supplierCompanyID kernel.UUID
	buyerCompanyID    kernel.UUID
	plannedDate       time.Time
	lines             []services.DirectLine

	guard guard.ConstructorGuard
}

// NewCreateDirectDeliveryCommand creates a command for direct delivery
// creation. At least one line is required.
func NewCreateDirectDeliveryCommand(
	supplierCompanyID, buyerCompanyID kernel.UUID,
	plannedDate time.Time,
	lines []services.DirectLine,
) (CreateDirectDeliveryCommand, error) {
	command := CreateDirectDeliveryCommand{
		plannedDate: plannedDate,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSupplierCompanyID(supplierCompanyID),
		command.setBuyerCompanyID(buyerCompanyID),
		command.setLines(lines),
	); err != nil {
		return CreateDirectDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDirectDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDirectDeliveryCommandIsNotConstructed)
}

// SupplierCompanyID returns the shipping company.
func (c CreateDirectDeliveryCommand) SupplierCompanyID() kernel.UUID {
	return c.supplierCompanyID
}

// BuyerCompanyID returns the receiving company.
func (c CreateDirectDeliveryCommand) BuyerCompanyID() kernel.UUID {
	return c.buyerCompanyID
}

// PlannedDate returns the planned delivery date.
func (c CreateDirectDeliveryCommand) PlannedDate() time.Time {
	return c.plannedDate
}

// Lines returns the direct shipment lines.
func (c CreateDirectDeliveryCommand) Lines() []services.DirectLine {
	return c.lines
}

func (c *CreateDirectDeliveryCommand) setSupplierCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.supplierCompanyID = id
	return nil
}

func (c *CreateDirectDeliveryCommand) setBuyerCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.buyerCompanyID = id
	return nil
}

func (c *CreateDirectDeliveryCommand) setLines(lines []services.DirectLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("delivery lines")
	}
	c.lines = lines
	return nil
}
