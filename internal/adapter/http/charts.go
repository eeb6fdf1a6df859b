package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

var chartRead = failure{
	notFound: "Chart data not found",
	invalid:  "Invalid date range",
	internal: "Failed to fetch chart data",
}

// handleChart returns the chart bound to the {type} path parameter, scaled
// to the optional `from`/`to` range. Unseeded types result in HTTP 404.
func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	rng, err := parseRange(r)
	if err != nil {
		h.fail(w, r, err, chartRead)
		return
	}
	c, err := h.svc.Chart(r.Context(), chi.URLParam(r, "type"), rng)
	if err != nil {
		h.fail(w, r, err, chartRead)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}
