// Package metric provides Prometheus metrics for Calculon.
//
// It exposes metrics in Prometheus format for monitoring
// session counts, command rates and the shared value.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Command outcomes used as the "result" label of CommandsTotal.
const (
	ResultOK         = "ok"
	ResultUnknown    = "unknown"
	ResultBadArgs    = "bad_args"
	ResultBadOperand = "bad_operand"
)

// Registry holds all application metrics.
//
// All methods are safe to call on a nil *Registry, which records nothing.
type Registry struct {
	registry *prometheus.Registry

	// Session metrics
	SessionsActive prometheus.Gauge
	SessionsTotal  prometheus.Counter

	// Protocol metrics
	CommandsTotal *prometheus.CounterVec
	AcceptErrors  prometheus.Counter
}

// NewRegistry creates a new metrics registry with Go runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "calculon",
			Name:      "sessions_active",
			Help:      "Number of currently open protocol sessions.",
		}),
		SessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "calculon",
			Name:      "sessions_total",
			Help:      "Total number of accepted protocol sessions.",
		}),
		CommandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "calculon",
			Name:      "commands_total",
			Help:      "Total number of command lines processed.",
		}, []string{"command", "result"}),
		AcceptErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "calculon",
			Name:      "accept_errors_total",
			Help:      "Total number of failed accept calls.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.SessionsActive,
		r.SessionsTotal,
		r.CommandsTotal,
		r.AcceptErrors,
	)

	return r
}

// RegisterValue registers a collector reporting the shared value through read.
func (r *Registry) RegisterValue(read func() float64) error {
	if r == nil {
		return nil
	}
	return r.registry.Register(NewValueCollector(read))
}

// Gatherer returns the underlying Prometheus gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// SessionOpened records a newly accepted session.
func (r *Registry) SessionOpened() {
	if r == nil {
		return
	}
	r.SessionsTotal.Inc()
	r.SessionsActive.Inc()
}

// SessionClosed records the end of a session.
func (r *Registry) SessionClosed() {
	if r == nil {
		return
	}
	r.SessionsActive.Dec()
}

// ObserveCommand records one processed command line.
func (r *Registry) ObserveCommand(command, result string) {
	if r == nil {
		return
	}
	r.CommandsTotal.WithLabelValues(command, result).Inc()
}

// AcceptError records a failed accept.
func (r *Registry) AcceptError() {
	if r == nil {
		return
	}
	r.AcceptErrors.Inc()
}
