package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/juju/errors"
)

// failure holds the client-facing messages for one resource. Causes are
// logged but never sent.
type failure struct {
	notFound string
	invalid  string
	internal string
}

// writeJSON encodes v with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already out
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, msg string) {
	h.writeJSON(w, code, map[string]string{"error": msg})
}

// fail maps err onto a status code: NotFound is 404, NotValid and
// BadRequest are 400, anything else is logged and reported as 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, f failure) {
	switch {
	case errors.Is(err, errors.NotFound) && f.notFound != "":
		h.writeError(w, http.StatusNotFound, f.notFound)
	case errors.Is(err, errors.NotValid), errors.Is(err, errors.BadRequest):
		h.logger.Debug("rejected request", slog.String("path", r.URL.Path), slog.Any("error", err))
		h.writeError(w, http.StatusBadRequest, f.invalid)
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeError(w, http.StatusInternalServerError, f.internal)
	}
}
