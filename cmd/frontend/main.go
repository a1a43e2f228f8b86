package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aescanero/chequemgmt-frontend/internal/application/monitor"
	"github.com/aescanero/chequemgmt-frontend/internal/config"
	"github.com/aescanero/chequemgmt-frontend/pkg/adapters/backend"
	"github.com/aescanero/chequemgmt-frontend/pkg/adapters/metrics/prometheus"
	"github.com/aescanero/chequemgmt-frontend/pkg/api/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting cheque frontend",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("backend_url", cfg.Backend.URL),
		zap.Duration("backend_timeout", cfg.Backend.Timeout))

	metricsCollector := prometheus.NewCollector(nil)

	backendClient, err := backend.NewClient(&backend.Config{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout,
		Metrics: metricsCollector,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal("failed to create backend client", zap.Error(err))
	}

	var backendMonitor *monitor.BackendMonitor
	if cfg.Backend.ProbeInterval > 0 {
		backendMonitor = monitor.NewBackendMonitor(
			backendClient,
			metricsCollector,
			cfg.Backend.ProbeInterval,
			cfg.Backend.Timeout,
			logger,
		)
		backendMonitor.Start()
	}

	httpServer := http.NewServer(&http.Config{
		Addr:         cfg.GetHTTPAddr(),
		Backend:      backendClient,
		Metrics:      metricsCollector,
		Logger:       logger,
		ReadTimeout:  cfg.Timeouts.ReadTimeout,
		WriteTimeout: cfg.Timeouts.WriteTimeout,
		IdleTimeout:  cfg.Timeouts.IdleTimeout,
	})

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("cheque frontend started",
		zap.String("http_addr", httpServer.Addr()),
		zap.Bool("backend_monitor", backendMonitor != nil))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if backendMonitor != nil {
		backendMonitor.Stop()
	}

	logger.Info("cheque frontend shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
