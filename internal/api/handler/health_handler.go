package handler

import (
	"net/http"
	"time"

	"github.com/aigem2/aigem-backend/internal/domain"
	"github.com/aigem2/aigem-backend/internal/metrics"
)

// HealthHandler serves the backend status document.
type HealthHandler struct {
	now       func() time.Time
	onOutcome func(outcome string)
}

// NewHealthHandler constructs the handler. now defaults to time.Now and
// onOutcome is optional (nil = no-op).
func NewHealthHandler(now func() time.Time, onOutcome func(string)) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	if onOutcome == nil {
		onOutcome = func(string) {}
	}
	return &HealthHandler{now: now, onOutcome: onOutcome}
}

// Health handles GET /api/test and GET /health
//
// @Summary  Backend status and advertised activation endpoints
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.StatusResponse
// @Failure  405  {object}  domain.ErrorResponse
// @Router   /api/test [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.onOutcome(metrics.OutcomeMethodNotAllowed)
		w.Header().Set("Allow", http.MethodGet)
		mapError(w, domain.ErrMethodNotAllowed)
		return
	}

	h.onOutcome(metrics.OutcomeOK)
	respondJSON(w, http.StatusOK, domain.NewStatusResponse(h.now()))
}
