// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package api

import (
	"net/http"
	"time"
)

// Health reports service health including database reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	httpStatus := http.StatusOK
	dbStatus := "ok"
	if err := h.db.Ping(r.Context()); err != nil {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
		dbStatus = "unreachable"
	}

	respondData(w, r, httpStatus, map[string]interface{}{
		"status":         status,
		"database":       dbStatus,
		"uptime_seconds": int64(time.Since(h.startTime).Seconds()),
	})
}

// HealthLive is the liveness probe: the process is up and serving.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, http.StatusOK, map[string]interface{}{"status": "alive"})
}
