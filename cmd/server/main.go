// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

// Command server runs the media catalog HTTP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/KennethRomeroLopez/proyecto-final/internal/api"
	"github.com/KennethRomeroLopez/proyecto-final/internal/auth"
	"github.com/KennethRomeroLopez/proyecto-final/internal/config"
	"github.com/KennethRomeroLopez/proyecto-final/internal/database"
	"github.com/KennethRomeroLopez/proyecto-final/internal/logging"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("session_store", cfg.Session.Store).
		Msg("Starting server")

	db, err := database.New(&cfg.Database, cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	store, err := newSessionStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer store.Close()

	if cfg.Session.HashKey == "" {
		logging.Warn().Msg("No session hash key configured; sessions will not survive restarts")
	}
	codec, err := auth.NewCookieCodec(cfg.Session.CookieName, cfg.Session.HashKey, cfg.Session.CookieSecure)
	if err != nil {
		return fmt.Errorf("failed to build cookie codec: %w", err)
	}

	sessions := auth.NewSessionMiddleware(store, codec, db, auth.SessionMiddlewareConfig{
		SessionTTL:     cfg.Session.TTL,
		SlidingSession: cfg.Session.Sliding,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions.StartCleanup(ctx, cfg.Session.CleanupInterval)

	handler := api.NewHandler(db, cfg, sessions)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewRouter(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logging.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logging.Info().Msg("Server stopped")
	return nil
}

// newSessionStore selects the session backend from config. Badger
// keeps sessions across restarts; memory is for development and tests.
func newSessionStore(cfg *config.Config) (auth.SessionStore, error) {
	switch cfg.Session.Store {
	case "badger":
		return auth.NewBadgerSessionStore(cfg.Session.BadgerPath)
	case "memory", "":
		return auth.NewMemorySessionStore(), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}
