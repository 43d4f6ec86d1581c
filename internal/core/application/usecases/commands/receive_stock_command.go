package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrReceiveStockCommandIsNotConstructed = errors.New(
		"ReceiveStockCommand must be created via NewReceiveStockCommand constructor",
	)
	ErrQuantityIsNegative = errors.New("quantity must not be negative")
)

// ReceiveStockCommand represents incoming stock arriving at a company: a
// receipt of quantity units of one catalog item, each of which becomes an
// individually identified Available unit in the ledger.
type ReceiveStockCommand struct { //nolint:recvcheck //using for validation
	receiptID kernel.UUID
	productID kernel.UUID
	companyID kernel.UUID
	quantity  int
	unitCost  kernel.Money
	batch     string
	expiry    *time.Time

	guard guard.ConstructorGuard
}

// NewReceiveStockCommand creates a command to record incoming stock.
// Quantity must not be negative; zero records the receipt without units.
func NewReceiveStockCommand(
	receiptID, productID, companyID kernel.UUID,
	quantity int,
	unitCost kernel.Money,
	batch string,
	expiry *time.Time,
) (ReceiveStockCommand, error) {
	command := ReceiveStockCommand{
		batch:  batch,
		expiry: expiry,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setReceiptID(receiptID),
		command.setProductID(productID),
		command.setCompanyID(companyID),
		command.setQuantity(quantity),
		command.setUnitCost(unitCost),
	); err != nil {
		return ReceiveStockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveStockCommand) Validate() error {
	return c.guard.Validate(ErrReceiveStockCommandIsNotConstructed)
}

// ReceiptID returns the identifier for the new receipt.
func (c ReceiveStockCommand) ReceiptID() kernel.UUID {
	return c.receiptID
}

// ProductID returns the catalog item received.
func (c ReceiveStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// CompanyID returns the company receiving the stock.
func (c ReceiveStockCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// Quantity returns the number of units received.
func (c ReceiveStockCommand) Quantity() int {
	return c.quantity
}

// UnitCost returns the per-unit cost of the received stock.
func (c ReceiveStockCommand) UnitCost() kernel.Money {
	return c.unitCost
}

// Batch returns the batch identifier, if any.
func (c ReceiveStockCommand) Batch() string {
	return c.batch
}

// Expiry returns the expiry date, or nil.
func (c ReceiveStockCommand) Expiry() *time.Time {
	return c.expiry
}

func (c *ReceiveStockCommand) setReceiptID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.receiptID = id
	return nil
}

func (c *ReceiveStockCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *ReceiveStockCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.companyID = id
	return nil
}

func (c *ReceiveStockCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsNegative
	}
	c.quantity = quantity
	return nil
}

func (c *ReceiveStockCommand) setUnitCost(unitCost kernel.Money) error {
	if err := unitCost.Validate(); err != nil {
		return err
	}
	c.unitCost = unitCost
	return nil
}
