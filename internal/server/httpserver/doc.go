// Package httpserver provides the ops HTTP server for Calculon.
//
// The server is optional and only listens when server.http.addr is set:
//
//   - GET /metrics: Prometheus exposition of telemetry/metric
//   - GET /health: liveness
//   - GET /ready: readiness of the protocol listener
//
// The protocol itself is served by internal/server/calcserver.
package httpserver
