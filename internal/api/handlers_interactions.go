// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package api

import (
	"context"
	"net/http"

	"github.com/KennethRomeroLopez/proyecto-final/internal/auth"
	"github.com/KennethRomeroLopez/proyecto-final/internal/logging"
)

// mark runs one favorite/watched insert for the session user and sends
// the browser back where it came from. Unknown ids are a silent no-op,
// and a second press on the same button inserts a second row.
func (h *Handler) mark(w http.ResponseWriter, r *http.Request, action string,
	fn func(ctx context.Context, userID, targetID int64) error) {
	user := auth.CurrentUser(r.Context())
	if user == nil {
		// RequireAuth runs before this handler; kept as a guard.
		redirect(w, r, "/login")
		return
	}

	id, ok := idFromURL(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Identificador inválido", nil)
		return
	}

	if err := fn(r.Context(), user.ID, id); err != nil {
		respondInternalError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Int64("user_id", user.ID).
		Int64("target_id", id).
		Str("action", action).
		Msg("Interaction recorded")

	redirectBack(w, r)
}

// MarcarPeliculaFavorita marks a movie favorite for the session user.
func (h *Handler) MarcarPeliculaFavorita(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, "favorite", h.db.MarkMovieFavorite)
}

// MarcarPeliculaVista marks a movie watched for the session user.
func (h *Handler) MarcarPeliculaVista(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, "watched", h.db.MarkMovieWatched)
}

// MarcarSerieFavorita marks a show favorite for the session user.
func (h *Handler) MarcarSerieFavorita(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, "favorite", h.db.MarkShowFavorite)
}

// MarcarSerieVista marks a show watched for the session user.
func (h *Handler) MarcarSerieVista(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, "watched", h.db.MarkShowWatched)
}

// Favoritas lists the session user's favorite movies and shows,
// duplicates included.
func (h *Handler) Favoritas(w http.ResponseWriter, r *http.Request) {
	user := auth.CurrentUser(r.Context())
	if user == nil {
		redirect(w, r, "/login")
		return
	}

	movies, err := h.db.ListFavoriteMovies(r.Context(), user.ID)
	if err != nil {
		respondInternalError(w, r, err)
		return
	}
	shows, err := h.db.ListFavoriteShows(r.Context(), user.ID)
	if err != nil {
		respondInternalError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, map[string]interface{}{
		"movies": movies,
		"shows":  shows,
	})
}

// Vistas lists the session user's watched movies and shows.
func (h *Handler) Vistas(w http.ResponseWriter, r *http.Request) {
	user := auth.CurrentUser(r.Context())
	if user == nil {
		redirect(w, r, "/login")
		return
	}

	movies, err := h.db.ListWatchedMovies(r.Context(), user.ID)
	if err != nil {
		respondInternalError(w, r, err)
		return
	}
	shows, err := h.db.ListWatchedShows(r.Context(), user.ID)
	if err != nil {
		respondInternalError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, map[string]interface{}{
		"movies": movies,
		"shows":  shows,
	})
}
