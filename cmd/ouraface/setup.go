package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/garrettladley/ouraface/internal/config"
	"github.com/garrettladley/ouraface/internal/face"
	"github.com/garrettladley/ouraface/internal/layout"
	"github.com/garrettladley/ouraface/internal/metrics"
	"github.com/garrettladley/ouraface/internal/settings"
	"github.com/garrettladley/ouraface/internal/storage"
	"github.com/garrettladley/ouraface/internal/xhttp/middleware"
	"github.com/garrettladley/ouraface/internal/xslog"
)

const metricsShutdownTimeout = 5 * time.Second

func readConfig() (config.Config, error) {
	cfg, err := config.Read()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, nil
}

func faceConfig(cfg config.Config) face.Config {
	return face.Config{
		Screen:     layout.Size{W: cfg.Screen.Width, H: cfg.Screen.Height},
		Round:      cfg.Screen.Round,
		Clock24h:   cfg.Display.Clock24h,
		SampleData: cfg.Display.SampleData,
	}
}

// openBackend opens the configured store, or memory when ephemeral is set.
func openBackend(ctx context.Context, cfg config.Config, ephemeral bool, logger *slog.Logger) (storage.Backend, error) {
	driver := cfg.Store.Driver
	if ephemeral {
		driver = storage.DriverMemory
	}
	dsn, err := cfg.StoreDSN()
	if err != nil {
		return nil, err
	}
	backend, err := storage.Open(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driver, err)
	}
	logger.DebugContext(ctx, "store opened", xslog.Driver(driver.String()))
	return backend, nil
}

func loadSettings(ctx context.Context, backend storage.Backend, logger *slog.Logger) (*settings.Store, error) {
	store := settings.NewStore(backend, logger)
	if err := store.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	return store, nil
}

func closeBackend(ctx context.Context, backend storage.Backend, logger *slog.Logger) {
	if err := backend.Close(); err != nil {
		logger.ErrorContext(ctx, "failed to close store", xslog.Error(err))
	}
}

// newMetrics returns nil when no metrics address is configured.
func newMetrics(cfg config.Config) (*metrics.Metrics, *prometheus.Registry) {
	if cfg.MetricsAddr == "" {
		return nil, nil
	}
	reg := prometheus.NewRegistry()
	return metrics.New(reg), reg
}

// serveMetrics runs the prometheus endpoint until ctx is done.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", metrics.Handler(reg))

	srv := &http.Server{
		Addr: addr,
		Handler: middleware.Chain(mux,
			middleware.Logger(logger),
			middleware.Logging,
			middleware.Recovery,
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "serving metrics", xslog.Addr(addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("metrics server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), metricsShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics server shutdown failed: %w", err)
	}
	return nil
}

// openOutput opens path for writing; "-" is stdout and "" discards.
func openOutput(path string) (io.WriteCloser, error) {
	switch path {
	case "":
		return nopCloser{io.Discard}, nil
	case "-":
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
