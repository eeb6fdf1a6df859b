package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adpulse/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a DashboardUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc     port.DashboardUseCase
	logger  *slog.Logger
	router  chi.Router
	metrics *httpMetrics
}

// Option customises a Handler.
type Option func(*Handler, chi.Router)

// WithMetrics instruments every request and serves the registry on
// GET /metrics.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(h *Handler, r chi.Router) {
		h.metrics = newHTTPMetrics(reg)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
}

// NewHandler creates a handler with all routes configured. It accepts a
// DashboardUseCase implementation and a logger. The returned Handler
// registers handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.DashboardUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(h.logRequests)
	r.Use(h.instrument)
	r.Use(middleware.Recoverer)

	for _, opt := range opts {
		opt(h, r)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/metrics", h.handleMetrics)

		r.Get("/campaigns", h.handleListCampaigns)
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Put("/campaigns/{id}", h.handleUpdateCampaign)
		r.Delete("/campaigns/{id}", h.handleDeleteCampaign)

		r.Get("/charts/{type}", h.handleChart)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
