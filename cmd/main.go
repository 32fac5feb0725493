// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
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

	"github.com/Shivanand-hulikatti/eventease-catalog/internal/config"
	"github.com/Shivanand-hulikatti/eventease-catalog/internal/database"
	"github.com/Shivanand-hulikatti/eventease-catalog/internal/handler"
	"github.com/Shivanand-hulikatti/eventease-catalog/internal/logger"
	"github.com/Shivanand-hulikatti/eventease-catalog/internal/repository"
	"github.com/Shivanand-hulikatti/eventease-catalog/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	// ── 1. Seed the catalog ──────────────────────────────────────────────
	src, cleanup, err := seedSource(ctx, cfg, log)
	if err != nil {
		return err
	}
	catalog, err := repository.Load(ctx, src)
	cleanup()
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	log.Info("catalog seeded", "source", cfg.SeedSource, "events", catalog.Len())

	// ── 2. Wire up layers ────────────────────────────────────────────────
	eventSvc := service.NewEventService(catalog)
	eventHandler := handler.NewEventHandler(eventSvc)

	// ── 3. Start server with graceful shutdown ───────────────────────────
	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           handler.NewRouter(eventHandler, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}

// seedSource picks the configured source. The returned cleanup releases
// anything the source opened and is safe to call once seeding is done.
func seedSource(ctx context.Context, cfg config.Config, log *slog.Logger) (repository.Source, func(), error) {
	switch cfg.SeedSource {
	case config.SeedFile:
		return repository.FileSource{Path: cfg.SeedFile}, func() {}, nil
	case config.SeedPostgres:
		pool, err := database.NewPool(ctx, cfg.DB, log)
		if err != nil {
			return nil, nil, fmt.Errorf("database: %w", err)
		}
		log.Info("connected to postgres", "host", cfg.DB.Host, "db", cfg.DB.Name)
		return repository.NewPostgresSource(pool), pool.Close, nil
	default:
		return repository.StaticSource{}, func() {}, nil
	}
}
