package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/doubleentry/internal/adapter/http/dto"
	"github.com/iho/doubleentry/internal/domain"
	"github.com/iho/doubleentry/internal/infrastructure/metrics"
)

// TransferService defines the behavior needed by TransferHandler.
type TransferService interface {
	TransferFunds(ctx context.Context, req *domain.TransferRequest) (*domain.Transaction, error)
	GetTransactionByRef(ctx context.Context, ref string) (*domain.Transaction, error)
	FindTransactionsByAccountRef(ctx context.Context, accountRef string) ([]*domain.Transaction, error)
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	transferUC TransferService
	metrics    *metrics.Metrics
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferUC TransferService, m *metrics.Metrics) *TransferHandler {
	return &TransferHandler{transferUC: transferUC, metrics: m}
}

// Create runs the transfer pipeline and returns the committed transaction.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	transferReq, err := req.ToDomain()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid transfer request", err.Error())
		return
	}

	start := time.Now()

	txn, err := h.transferUC.TransferFunds(r.Context(), transferReq)
	if err != nil {
		h.metrics.TransferErrors.WithLabelValues(domain.KindOf(err).String()).Inc()
		writeError(w, mapDomainError(err), "failed to transfer funds", err.Error())

		return
	}

	h.metrics.TransfersCommitted.Inc()
	h.metrics.TransferDuration.Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

// Get retrieves a transaction by reference. An unknown reference is a plain
// 404, mirroring the nil result of the use case.
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	txn, err := h.transferUC.GetTransactionByRef(r.Context(), ref)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get transaction", err.Error())
		return
	}

	if txn == nil {
		writeError(w, http.StatusNotFound, "transaction not found", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn))
}

// ListByAccount lists the transactions touching an account in commit order.
func (h *TransferHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	txns, err := h.transferUC.FindTransactionsByAccountRef(r.Context(), ref)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(txns),
		Total:        int64(len(txns)),
	})
}
