package handlers

import (
	"net/http"
)

// GetDashboard godoc
// @Summary Stock summary for the dashboard view
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/metrics/dashboard [get]
func (h *MetricsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	m, err := h.metricsRepo.GetDashboardMetrics(ctx)
	if err != nil {
		h.log.Error(ctx, "dashboard.failed", err)
		WriteError(w, http.StatusInternalServerError, CodeInternal, "failed to fetch metrics")
		return
	}
	if err := writeJSON(w, http.StatusOK, m); err != nil {
		h.log.Error(ctx, "response.write_failed", err)
	}
}
