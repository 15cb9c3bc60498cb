// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for calculon-server.
type ServerConfig struct {
	Server ServerSection `koanf:"server"`
	Log    LogSection    `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	Calc CalcConfig `koanf:"calc"`
	HTTP HTTPConfig `koanf:"http"`

	// ShutdownTimeout bounds how long shutdown hooks may run after SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// CalcConfig configures the line protocol server.
type CalcConfig struct {
	Addr string `koanf:"addr"`

	// AcceptRate limits new connections per second. 0 means unlimited.
	AcceptRate float64 `koanf:"accept_rate"`

	// AcceptBurst is the burst allowance for AcceptRate.
	AcceptBurst int `koanf:"accept_burst"`
}

// HTTPConfig configures the ops HTTP server (/metrics, /health, /ready).
// An empty Addr disables it.
type HTTPConfig struct {
	Addr string `koanf:"addr"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
