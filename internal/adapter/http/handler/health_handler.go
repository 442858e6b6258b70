package handler

import (
	"context"
	"net/http"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	checks []Pinger
}

// NewHealthHandler creates a new HealthHandler. Pass one Pinger per external
// collaborator; the in-memory backend needs none.
func NewHealthHandler(checks ...Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness reports whether all backing services answer.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	for _, check := range h.checks {
		if err := check.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "not ready", err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
