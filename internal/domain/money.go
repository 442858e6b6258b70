package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount tied to a currency code. The zero value
// carries no currency and counts as absent; every constructed Money has one.
// Arithmetic and comparison require both operands to share a currency.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney creates a Money from an amount and an ISO 4217 style currency code.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return Money{}, NewInvalidArgument("money currency is required")
	}

	return Money{amount: amount, currency: currency}, nil
}

// ParseMoney creates a Money from decimal string form, e.g. ("10.50", "EUR").
func ParseMoney(amount, currency string) (Money, error) {
	if strings.TrimSpace(amount) == "" {
		return Money{}, NewInvalidArgument("money amount is required")
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, NewInvalidArgument("money amount is not a valid decimal: " + amount)
	}

	return NewMoney(d, currency)
}

// MustMoney is ParseMoney that panics on invalid input. For fixtures and tests.
func MustMoney(amount, currency string) Money {
	m, err := ParseMoney(amount, currency)
	if err != nil {
		panic(err)
	}

	return m
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsSet reports whether the Money was constructed, as opposed to the absent
// zero value.
func (m Money) IsSet() bool {
	return m.currency != ""
}

// Add returns m + o. Both operands must share a currency.
func (m Money) Add(o Money) (Money, error) {
	if err := m.sameCurrency(o); err != nil {
		return Money{}, err
	}

	return Money{amount: m.amount.Add(o.amount), currency: m.currency}, nil
}

// Neg returns the negation of m.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// Equal reports whether two Money values represent the same amount. Both
// operands must share a currency.
func (m Money) Equal(o Money) (bool, error) {
	if err := m.sameCurrency(o); err != nil {
		return false, err
	}

	return m.amount.Equal(o.amount), nil
}

// Cmp compares two Money values, returning -1, 0 or 1. Both operands must
// share a currency.
func (m Money) Cmp(o Money) (int, error) {
	if err := m.sameCurrency(o); err != nil {
		return 0, err
	}

	return m.amount.Cmp(o.amount), nil
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the Money as "<amount> <currency>".
func (m Money) String() string {
	if !m.IsSet() {
		return "<no money>"
	}

	return m.amount.String() + " " + m.currency
}

func (m Money) sameCurrency(o Money) error {
	if !m.IsSet() || !o.IsSet() {
		return NewInvalidArgument("money operand is not set")
	}

	if m.currency != o.currency {
		return NewInvalidArgument("currency mismatch: " + m.currency + " vs " + o.currency)
	}

	return nil
}
