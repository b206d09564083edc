package httpx

import (
	"net/http"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/service"
)

// MetricsHandlers serves the dashboard summary.
type MetricsHandlers struct {
	Svc *service.MetricsService
}

// Summary handles GET /dashboard/metrics.
func (h *MetricsHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Svc.Summary(r.Context())
	if err != nil {
		WriteBackendError(w, err, "Unable to build dashboard metrics")
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}
