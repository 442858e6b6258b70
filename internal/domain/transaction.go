package domain

import (
	"time"
)

// Leg is one signed Money amount applied to one account within a transfer.
// Negative amounts debit the account, positive amounts credit it.
type Leg struct {
	AccountRef string
	Amount     Money
}

// Transaction is the immutable, persisted record of a committed transfer:
// two or more balanced legs sharing a reference, a type and a timestamp.
// Once committed it is never updated or removed.
type Transaction struct {
	Reference string
	Type      string
	Legs      []Leg
	CreatedAt time.Time
}

// Clone returns an independent copy, legs included.
func (t *Transaction) Clone() *Transaction {
	cp := *t
	cp.Legs = make([]Leg, len(t.Legs))
	copy(cp.Legs, t.Legs)

	return &cp
}

// AccountRefs returns the distinct account references across all legs, in
// first-appearance order.
func (t *Transaction) AccountRefs() []string {
	seen := make(map[string]bool, len(t.Legs))

	var refs []string
	for _, leg := range t.Legs {
		if !seen[leg.AccountRef] {
			seen[leg.AccountRef] = true
			refs = append(refs, leg.AccountRef)
		}
	}

	return refs
}
