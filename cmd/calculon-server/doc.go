// Package main provides the entry point for calculon-server.
//
// The server holds a single shared number and exposes it over a
// line-oriented TCP protocol:
//
//   - ADD x, SUBTRACT x, POWER x mutate the value and echo the result
//   - SHOW reports the current value
//
// An optional ops HTTP listener serves /metrics, /health and /ready.
//
// Usage:
//
//	calculon-server [flags]
//	calculon-server -config /path/to/config.yaml
//
// Environment variables prefixed with CALCULON_ override file values,
// e.g. CALCULON_SERVER_CALC_ADDR=0.0.0.0:4673.
package main
