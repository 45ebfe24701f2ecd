// Package main starts the pool logbook HTTP API. It only wires the store,
// services, and router together.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/pool-logbook/backend/internal/archive"
	"github.com/pkordes/pool-logbook/backend/internal/config"
	"github.com/pkordes/pool-logbook/backend/internal/handler"
	"github.com/pkordes/pool-logbook/backend/internal/middleware"
	"github.com/pkordes/pool-logbook/backend/internal/repo"
	"github.com/pkordes/pool-logbook/backend/internal/service"
)

const shutdownGrace = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}
	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// run serves until ctx is cancelled, then drains in-flight requests.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	started := time.Now()

	backend, err := repo.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	defer func() {
		if err := backend.Close(context.Background()); err != nil {
			logger.Error("failed to close store", "error", err)
		}
	}()
	logger.Info("store connection established", "driver", backend.Driver)

	archiver, err := newArchiver(ctx, cfg.Archive, logger)
	if err != nil {
		return err
	}

	store := backend.Store
	srv := handler.NewServer(handler.Services{
		Pools:  service.NewPoolService(store),
		Logs:   service.NewLogbookService(store, store),
		Stats:  service.NewStatsService(store),
		Export: service.NewExportService(store, archiver),
		Health: service.NewHealthService(backend.Inspector, started),
		Logger: logger,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	// Recoverer sits inside the logger so a panic is still logged as a 500.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(metrics.Handler)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Mount("/", srv.Routes())

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", httpSrv.Addr)
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newArchiver returns nil when no archive bucket is configured, which turns
// POST /export/archive into a 404.
func newArchiver(ctx context.Context, cfg config.ArchiveConfig, logger *slog.Logger) (service.Archiver, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	a, err := archive.NewS3Archiver(ctx, archive.Config{
		Bucket:    cfg.Bucket,
		Region:    cfg.Region,
		Endpoint:  cfg.Endpoint,
		PathStyle: cfg.PathStyle,
		Prefix:    cfg.Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("configure export archive: %w", err)
	}
	logger.Info("export archiving enabled", "bucket", cfg.Bucket)
	return a, nil
}
