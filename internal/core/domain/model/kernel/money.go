package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or MoneyFromString")

// Money is an immutable value object for monetary amounts: unit costs on
// stock receipts, line prices on orders and deliveries. Amounts are decimal,
// never floats, and must be non-negative.
type Money struct {
	amount   decimal.Decimal
	currency string

	isConstructed bool
}

// NewMoney creates a Money value. The amount must be non-negative and the
// currency code non-empty.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if currency == "" {
		return Money{}, errs.NewValueIsRequiredError("currency")
	}
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	return Money{
		amount:        amount,
		currency:      currency,
		isConstructed: true,
	}, nil
}

// MoneyFromString parses a decimal amount from its string form, as stored in
// the database or received on the wire.
func MoneyFromString(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d, currency)
}

// Validate ensures the Money was created through a constructor.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// Mul returns the line total for qty units at this unit price.
func (m Money) Mul(qty int) (Money, error) {
	if qty < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", qty))
	}
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(qty))), m.currency)
}

// IsEqual reports whether two Money values have the same amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String renders the amount and currency, e.g. "12.50 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount, m.currency)
}
