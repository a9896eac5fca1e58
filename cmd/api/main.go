package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tmanas06/uportfolio-sub000/internal/catalog"
	"github.com/tmanas06/uportfolio-sub000/internal/config"
	"github.com/tmanas06/uportfolio-sub000/internal/content"
	"github.com/tmanas06/uportfolio-sub000/internal/http"
	"github.com/tmanas06/uportfolio-sub000/internal/service"
	"github.com/tmanas06/uportfolio-sub000/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == config.FormatJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closer, err := openSource(cfg)
	if err != nil {
		log.Fatalf("Failed to open content source: %v", err)
	}
	defer func() {
		_ = closer.Close()
	}()

	cat := catalog.New(source)
	snap, err := cat.Reload(ctx)
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}
	slog.Info("Content catalog ready", "source", cfg.ContentSource, "version", snap.Version, "records", len(snap.Index))

	if cfg.WatchContent {
		go func() {
			if err := cat.Watch(ctx, cfg.ContentPath, catalog.DefaultDebounce); err != nil {
				slog.Error("Content watcher stopped", "error", err)
			}
		}()
	}

	router := http.NewRouter(&http.Deps{
		SearchService: service.NewSearchService(cat),
		Catalog:       cat,
		Renderer:      content.NewRenderer(),
		CORSOrigin:    cfg.CORSOrigin,
		RateLimit:     cfg.RateLimit,
		RateBurst:     cfg.RateBurst,
	})

	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", server.Addr)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed: %v", err)
		}
	case <-ctx.Done():
		slog.Info("Shutting down API server", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openSource builds the configured content source. The closer releases the
// database when the source is SQLite.
func openSource(cfg *config.Config) (content.Source, io.Closer, error) {
	switch cfg.ContentSource {
	case config.SourceYAML:
		slog.Info("Using YAML content", "path", cfg.ContentPath)
		return content.NewYAMLSource(cfg.ContentPath), nopCloser{}, nil
	case config.SourceSQLite:
		db, err := storage.New(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := storage.Migrate(db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		slog.Info("Using SQLite content", "path", cfg.DBPath)
		return storage.NewContentRepo(db), db, nil
	default:
		slog.Info("Using embedded sample content")
		return content.NewEmbeddedSource(), nopCloser{}, nil
	}
}
