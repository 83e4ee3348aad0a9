// Package v1handler implements the version 1 JSON API handlers.
package v1handler

import (
	"encoding/json"
	"net/http"

	"phishguard/internal/analyzer"
	"phishguard/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/metric"
)

// analysisDuration observes the wall time of one analysis request.
var analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{ //nolint: gochecknoglobals
	Name:    "phishguard_analysis_duration_seconds",
	Help:    "Duration of URL analysis requests.",
	Buckets: metrics.DefaultBuckets,
})

// StatusReporter exposes classifier diagnostics for the health endpoint.
// It is consumed at process start and by monitoring, never by per-request
// decision logic.
type StatusReporter interface {
	Available() bool
	Version() string
}

// Deps are the collaborators the v1 handlers need.
type Deps struct {
	Analyzer analyzer.Service
	Status   StatusReporter
}

// Handler serves the v1 API routes.
type Handler struct {
	deps     Deps
	analyses metric.Int64Counter
}

// New constructs the v1 handler and its instruments on the given meter
// provider.
func New(deps Deps, mp metric.MeterProvider) (*Handler, error) {
	analyses, err := mp.Meter("phishguard/api").Int64Counter("phishguard_analyses",
		metric.WithDescription("Number of completed URL analyses, by verdict."))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &Handler{deps: deps, analyses: analyses}, nil
}

// Routes returns the chi router for the v1 API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/analyze", h.Analyze)
	r.Get("/health", h.Health)

	return r
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
