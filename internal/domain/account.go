package domain

import (
	"time"
)

// Account is a ledger entity: a unique reference holding a single-currency
// balance. Balances change only through committed transactions.
type Account struct {
	Reference string
	Balance   Money
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Currency returns the account's currency, fixed at creation.
func (a *Account) Currency() string {
	return a.Balance.Currency()
}

// Clone returns an independent copy so stores can hand out accounts without
// sharing mutable state.
func (a *Account) Clone() *Account {
	cp := *a
	return &cp
}
