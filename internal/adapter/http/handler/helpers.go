package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/doubleentry/internal/adapter/http/dto"
	"github.com/iho/doubleentry/internal/domain"
	"github.com/iho/doubleentry/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps the ledger error taxonomy to HTTP status codes.
func mapDomainError(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalidArgument,
		domain.KindIllegalState,
		domain.KindTransferValidation,
		domain.KindUnbalancedLegs:
		return http.StatusBadRequest
	case domain.KindAccountNotFound:
		return http.StatusNotFound
	case domain.KindInsufficientFunds:
		return http.StatusUnprocessableEntity
	case domain.KindInfrastructure:
		// A uniqueness conflict is infrastructure to the core, but a
		// conflict to an HTTP client.
		if errors.Is(err, usecase.ErrAlreadyExists) {
			return http.StatusConflict
		}

		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
