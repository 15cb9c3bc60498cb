package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/yndnr/calculon-go/internal/infra/buildinfo"
	"github.com/yndnr/calculon-go/internal/infra/confloader"
	"github.com/yndnr/calculon-go/internal/infra/shutdown"
	"github.com/yndnr/calculon-go/internal/server/calcserver"
	"github.com/yndnr/calculon-go/internal/server/config"
	"github.com/yndnr/calculon-go/internal/server/httpserver"
	"github.com/yndnr/calculon-go/internal/telemetry/logger"
	"github.com/yndnr/calculon-go/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("calculon-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	log.Info("starting calculon-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", *configFile)

	metrics := metric.NewRegistry()

	calc := calcserver.New(&calcserver.Config{
		Address:     cfg.Server.Calc.Addr,
		AcceptRate:  cfg.Server.Calc.AcceptRate,
		AcceptBurst: cfg.Server.Calc.AcceptBurst,
	}, log, metrics)

	if err := calc.Listen(); err != nil {
		return err
	}

	shutdownHandler := shutdown.NewHandler(cfg.Server.ShutdownTimeout)

	// Hooks run in reverse order of registration.
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down calc server", "active_sessions", calc.ActiveSessions())
		return calc.Shutdown(ctx)
	})

	go func() {
		if err := calc.Serve(context.Background()); err != nil {
			shutdownHandler.Trigger(fmt.Errorf("calc server: %w", err))
		}
	}()

	if cfg.Server.HTTP.Addr != "" {
		httpServer := httpserver.New(cfg.Server.HTTP.Addr, httpserver.NewRouter(&httpserver.RouterConfig{
			Metrics: metrics,
			Ready:   calc.Running,
			Logger:  log.Slog(),
		}))

		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			log.Info("shutting down HTTP server")
			return httpServer.Shutdown(ctx)
		})

		go func() {
			log.Info("HTTP server listening", "addr", cfg.Server.HTTP.Addr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				shutdownHandler.Trigger(fmt.Errorf("HTTP server: %w", err))
			}
		}()
	}

	if *configFile != "" {
		watcher, err := watchConfig(*configFile, log)
		if err != nil {
			log.Warn("config watcher disabled", "error", err)
		} else {
			shutdownHandler.OnShutdown(func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// watchConfig reloads the file on change and applies the log level.
// Listener addresses are only read at startup.
func watchConfig(path string, log logger.Logger) (*confloader.Watcher, error) {
	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(log.Slog()))
	if err != nil {
		return nil, err
	}
	if err := w.Watch(path); err != nil {
		_ = w.Stop()
		return nil, err
	}

	w.OnChange(func(string) {
		cfg, err := loadConfig(path)
		if err != nil {
			log.Warn("config reload rejected", "error", err)
			return
		}
		if cfg.Log.Level != logger.GetLevel() {
			logger.SetLevel(cfg.Log.Level)
			log.Info("log level changed", "level", cfg.Log.Level)
		}
	})
	w.StartAsync()

	return w, nil
}
