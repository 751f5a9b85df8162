// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package api

import (
	"net/http"

	"github.com/KennethRomeroLopez/proyecto-final/internal/auth"
	"github.com/KennethRomeroLopez/proyecto-final/internal/chart"
	"github.com/KennethRomeroLopez/proyecto-final/internal/logging"
)

// Estadisticas returns the session user's watch aggregates plus a
// rendered bar chart. Chart rendering failure degrades to
// stats-without-image rather than failing the page.
func (h *Handler) Estadisticas(w http.ResponseWriter, r *http.Request) {
	user := auth.CurrentUser(r.Context())
	if user == nil {
		redirect(w, r, "/login")
		return
	}

	stats, err := h.db.WatchStats(r.Context(), user.ID)
	if err != nil {
		respondInternalError(w, r, err)
		return
	}

	data := map[string]interface{}{"stats": stats}
	png, err := chart.RenderWatchCounts(stats.WatchedMovieCount, stats.WatchedShowCount)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to render watch chart")
	} else {
		// []byte marshals to base64, ready for a data: URI.
		data["chart_png"] = png
	}

	respondData(w, r, http.StatusOK, data)
}
