package handlers

import (
	"context"
	"net/http"
	"time"
)

const readinessTimeout = 2 * time.Second

// Live godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /health/live [get]
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, StatusResponse{Status: "live"})
}

// Ready godoc
// @Summary Readiness probe
// @Description Pings the configured store.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 503 {object} ErrorResponse
// @Router /health/ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			h.log.Warn(h.log.WithField(ctx, "error", err.Error()), "health.not_ready")
			WriteError(w, http.StatusServiceUnavailable, CodeUnavailable, "store unavailable")
			return
		}
	}
	_ = writeJSON(w, http.StatusOK, StatusResponse{Status: "ready"})
}
