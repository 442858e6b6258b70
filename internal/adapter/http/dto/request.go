package dto

import (
	"github.com/iho/doubleentry/internal/domain"
)

// MoneyRequest carries a decimal amount and currency in string form, so the
// wire format never goes through binary floating point.
type MoneyRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// ToDomain converts to a domain Money. A fully empty MoneyRequest maps to the
// absent zero value, which downstream validation rejects with the proper
// error kind; a partially filled or malformed one fails here.
func (m MoneyRequest) ToDomain() (domain.Money, error) {
	if m.Amount == "" && m.Currency == "" {
		return domain.Money{}, nil
	}

	return domain.ParseMoney(m.Amount, m.Currency)
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Reference      string       `json:"reference"`
	OpeningBalance MoneyRequest `json:"opening_balance"`
}

// TransferLegRequest represents one leg of a transfer request.
type TransferLegRequest struct {
	AccountRef string       `json:"account_ref"`
	Amount     MoneyRequest `json:"amount"`
}

// CreateTransferRequest represents a request to transfer funds.
type CreateTransferRequest struct {
	Reference string               `json:"reference"`
	Type      string               `json:"type"`
	Legs      []TransferLegRequest `json:"legs"`
}

// ToDomain assembles the domain TransferRequest through its builder. No
// business validation happens here; the transfer pipeline owns that.
func (r *CreateTransferRequest) ToDomain() (*domain.TransferRequest, error) {
	b := domain.BuildTransferRequest().
		Reference(r.Reference).
		Type(r.Type)

	for _, leg := range r.Legs {
		amount, err := leg.Amount.ToDomain()
		if err != nil {
			return nil, err
		}

		b.Account(leg.AccountRef).Amount(amount)
	}

	return b.Build(), nil
}
