package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"introserve/internal/api"
	"introserve/internal/config"
	"introserve/internal/docfs"
	"introserve/internal/intro"
	"introserve/internal/warmup"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the resolver.
	source := intro.NewSource(docfs.OS{}, intro.SourceConfig{
		Roots:       cfg.Roots,
		Ext:         cfg.SourceExt,
		StatsWindow: cfg.StatsWindow,
	})

	// Prime the cache in the background.
	if cfg.Warmup {
		warmer := warmup.New(source, cfg.Roots, cfg.SourceExt, cfg.WarmupConcurrency, log)
		go warmer.Run(ctx)
	}

	// Initialize HTTP server.
	srv := api.NewServer(source, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting introserve", "port", cfg.Port, "roots", cfg.Roots, "ext", cfg.SourceExt)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
