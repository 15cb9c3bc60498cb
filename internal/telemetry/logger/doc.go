// Package logger provides structured logging for Calculon.
//
// This package wraps log/slog:
//
//   - logger.go: handler construction, level control, global default
//   - context.go: context-aware logging with session IDs
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering, adjustable at runtime
//   - Context propagation of per-connection session IDs
package logger
