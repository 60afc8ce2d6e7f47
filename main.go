package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wagneradl/lexdraft/internal/config"
	"github.com/wagneradl/lexdraft/internal/server"
	"github.com/wagneradl/lexdraft/internal/storage"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lexdraft",
	})

	cfg := config.Load()
	logger.Info("starting",
		"port", cfg.Port,
		"database_url_set", cfg.DatabaseURL != "",
		"database_name_set", cfg.DatabaseName != "",
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The store connection is best-effort: the process serves requests
	// even when the database is unreachable, and store-backed endpoints
	// fail individually.
	store := storage.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName, logger)
	defer store.Close(context.Background())

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server.New(store, cfg, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", "err", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}
}
