// Package metric provides Prometheus metrics for Calculon.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: Prometheus registry, server counters and HTTP handler
//   - collector.go: Custom collector reporting the shared value
//
// Metrics include:
//
//   - Active and total protocol sessions
//   - Commands processed, labelled by command and outcome
//   - Accept errors
//   - Current value of the shared cell
//
// Metrics are exposed at /metrics in Prometheus format.
package metric
