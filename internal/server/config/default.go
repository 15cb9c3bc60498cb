// Package config defines the server configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultCalcAddr        = "127.0.0.1:4673"
	DefaultAcceptBurst     = 1
	DefaultShutdownTimeout = 10 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			Calc: CalcConfig{
				Addr:        DefaultCalcAddr,
				AcceptBurst: DefaultAcceptBurst,
			},
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
