package dto

import (
	"time"

	"github.com/iho/doubleentry/internal/domain"
)

// MoneyResponse represents a Money value in API responses.
type MoneyResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MoneyFromDomain converts a domain Money to a response.
func MoneyFromDomain(m domain.Money) MoneyResponse {
	return MoneyResponse{
		Amount:   m.Amount().String(),
		Currency: m.Currency(),
	}
}

// BalanceResponse represents an account balance in API responses.
type BalanceResponse struct {
	Reference string        `json:"reference"`
	Balance   MoneyResponse `json:"balance"`
}

// LegResponse represents a transaction leg in API responses.
type LegResponse struct {
	AccountRef string        `json:"account_ref"`
	Amount     MoneyResponse `json:"amount"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	Reference string        `json:"reference"`
	Type      string        `json:"type"`
	Legs      []LegResponse `json:"legs"`
	CreatedAt time.Time     `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	legs := make([]LegResponse, len(t.Legs))
	for i, leg := range t.Legs {
		legs[i] = LegResponse{
			AccountRef: leg.AccountRef,
			Amount:     MoneyFromDomain(leg.Amount),
		}
	}

	return &TransactionResponse{
		Reference: t.Reference,
		Type:      t.Type,
		Legs:      legs,
		CreatedAt: t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txns []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		result[i] = TransactionFromDomain(t)
	}

	return result
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
