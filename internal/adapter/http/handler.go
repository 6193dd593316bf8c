package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adinsight/internal/core/port"
	"adinsight/internal/metrics"
)

// Handler is the inbound HTTP adapter. It holds the usecase to execute
// business logic, a logger for structured logging and the prometheus
// collectors. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	svc      port.CampaignUseCase
	logger   *slog.Logger
	validate *validator.Validate
	metrics  *metrics.Metrics
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. Collectors are
// registered on reg, which also backs the /metrics endpoint.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, reg *prometheus.Registry) *Handler {
	h := &Handler{
		svc:      svc,
		logger:   logger,
		validate: validator.New(),
		metrics:  metrics.New(reg),
	}

	r := chi.NewRouter()
	r.Use(h.requestID)
	r.Use(h.instrument)
	r.Use(h.recoverer)

	r.Get("/", h.handleRoot)
	r.Get("/full-data", h.handleFullData)
	r.Get("/campaign-data", h.handleCampaignData)
	r.Get("/region-data", h.handleRegionData)
	r.Post("/creative-data", h.handleCreativeData)
	r.Get("/simple-protected-data", h.handleSimpleProtected)
	r.Get("/encrypted-protected-data", h.handleEncryptedProtected)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// handleRoot is a plain-text greeting usable as a liveness probe.
func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Welcome to the campaign insights API"))
}
