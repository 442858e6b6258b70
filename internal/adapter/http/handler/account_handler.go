package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/doubleentry/internal/adapter/http/dto"
	"github.com/iho/doubleentry/internal/domain"
	"github.com/iho/doubleentry/internal/infrastructure/metrics"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, ref string, openingBalance domain.Money) error
	GetAccountBalance(ctx context.Context, ref string) (domain.Money, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
	metrics   *metrics.Metrics
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService, m *metrics.Metrics) *AccountHandler {
	return &AccountHandler{accountUC: accountUC, metrics: m}
}

// Create creates a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	opening, err := req.OpeningBalance.ToDomain()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid opening balance", err.Error())
		return
	}

	if err := h.accountUC.CreateAccount(r.Context(), req.Reference, opening); err != nil {
		writeError(w, mapDomainError(err), "failed to create account", err.Error())
		return
	}

	h.metrics.AccountsCreated.Inc()

	writeJSON(w, http.StatusCreated, dto.BalanceResponse{
		Reference: req.Reference,
		Balance:   dto.MoneyFromDomain(opening),
	})
}

// GetBalance returns the current committed balance of an account.
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	balance, err := h.accountUC.GetAccountBalance(r.Context(), ref)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account balance", err.Error())
		return
	}

	h.metrics.BalanceQueries.Inc()

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		Reference: ref,
		Balance:   dto.MoneyFromDomain(balance),
	})
}
