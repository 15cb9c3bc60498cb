// Package config defines the server configuration structure.
package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/yndnr/calculon-go/internal/telemetry/logger"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyLog(&cfg.Log); err != nil {
		return err
	}
	return nil
}

func verifyServer(cfg *ServerSection) error {
	if cfg.Calc.Addr == "" {
		return errors.New("server.calc.addr is required")
	}
	if err := verifyAddr("server.calc.addr", cfg.Calc.Addr); err != nil {
		return err
	}
	if cfg.Calc.AcceptRate < 0 {
		return errors.New("server.calc.accept_rate must not be negative")
	}
	if cfg.Calc.AcceptBurst < 0 {
		return errors.New("server.calc.accept_burst must not be negative")
	}

	if cfg.HTTP.Addr != "" {
		if err := verifyAddr("server.http.addr", cfg.HTTP.Addr); err != nil {
			return err
		}
		if cfg.HTTP.Addr == cfg.Calc.Addr {
			return errors.New("server.http.addr must differ from server.calc.addr")
		}
	}

	if cfg.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}
	return nil
}

func verifyAddr(key, addr string) error {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("%s: invalid address %q: %w", key, addr, err)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if !logger.ValidLevel(cfg.Level) {
		return fmt.Errorf("log.level: unknown level %q", cfg.Level)
	}
	switch strings.ToLower(cfg.Format) {
	case "json", "text", "console":
	default:
		return fmt.Errorf("log.format: unknown format %q", cfg.Format)
	}
	return nil
}
