package httpadapter

import (
	"net/http"

	"adpulse/internal/core/domain"
)

var metricsRead = failure{
	invalid:  "Invalid date range",
	internal: "Failed to fetch metrics",
}

// handleMetrics returns the latest metrics snapshot. It accepts optional
// `from` and `to` query parameters (YYYY-MM-DD or RFC3339); when both are
// present the snapshot is scaled to that window. Invalid dates result in
// HTTP 400. With no snapshot stored the body is JSON null.
func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	rng, err := parseRange(r)
	if err != nil {
		h.fail(w, r, err, metricsRead)
		return
	}
	m, err := h.svc.Metrics(r.Context(), rng)
	if err != nil {
		h.fail(w, r, err, metricsRead)
		return
	}
	h.writeJSON(w, http.StatusOK, m)
}

// parseRange reads the `from`/`to` query parameters.
func parseRange(r *http.Request) (domain.DateRange, error) {
	q := r.URL.Query()
	return domain.ParseDateRange(q.Get("from"), q.Get("to"))
}
