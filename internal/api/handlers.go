// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package api

import (
	"time"

	"github.com/KennethRomeroLopez/proyecto-final/internal/auth"
	"github.com/KennethRomeroLopez/proyecto-final/internal/config"
	"github.com/KennethRomeroLopez/proyecto-final/internal/database"
)

// Handler contains dependencies for the HTTP handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - helpers.go: respond/parse helpers shared by all handlers
//   - handlers_auth.go: register, login, logout
//   - handlers_pages.go: home, contents, admin landing
//   - handlers_catalog.go: catalog browsing and admin management
//   - handlers_interactions.go: favorite/watched marks and lists
//   - handlers_users.go: admin account management
//   - handlers_search.go: title prefix search
//   - handlers_stats.go: watch statistics with chart
//   - handlers_health.go: liveness/readiness
type Handler struct {
	db        *database.DB
	config    *config.Config
	sessions  *auth.SessionMiddleware
	startTime time.Time
}

// NewHandler creates the API handler with all required dependencies.
func NewHandler(db *database.DB, cfg *config.Config, sessions *auth.SessionMiddleware) *Handler {
	return &Handler{
		db:        db,
		config:    cfg,
		sessions:  sessions,
		startTime: time.Now(),
	}
}
