// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package api

import (
	"net/http"

	"github.com/KennethRomeroLopez/proyecto-final/internal/models"
)

// Busqueda searches movies and shows whose title starts with the
// submitted term. GET serves the empty search page; POST runs the
// search. LIKE wildcards in the term are escaped by the store, so
// "100%" matches titles literally starting with "100%".
func (h *Handler) Busqueda(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.pagePayload(w, r, "busqueda")
		return
	}

	if err := r.ParseForm(); err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Formulario inválido", err)
		return
	}

	term := r.PostFormValue("busqueda")
	movies := []models.Movie{}
	shows := []models.Show{}
	if term != "" {
		var err error
		movies, err = h.db.SearchMoviesByTitlePrefix(r.Context(), term)
		if err != nil {
			respondInternalError(w, r, err)
			return
		}
		shows, err = h.db.SearchShowsByTitlePrefix(r.Context(), term)
		if err != nil {
			respondInternalError(w, r, err)
			return
		}
	}

	respondData(w, r, http.StatusOK, map[string]interface{}{
		"term":   term,
		"movies": movies,
		"shows":  shows,
	})
}
