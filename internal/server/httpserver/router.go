package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/yndnr/calculon-go/internal/infra/buildinfo"
	"github.com/yndnr/calculon-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Metrics is exposed at /metrics. Nil disables the endpoint.
	Metrics *metric.Registry

	// Ready reports whether the protocol listener is accepting. Nil means always ready.
	Ready func() bool

	// Logger for panic reports.
	Logger *slog.Logger
}

// NewRouter creates the ops router.
func NewRouter(cfg *RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"version": buildinfo.Version,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, r *http.Request) {
		if cfg.Ready != nil && !cfg.Ready() {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_ready"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics.Handler())
	}

	return Chain(mux, RequestID(), Recover(logger))
}
