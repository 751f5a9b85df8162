// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package api

import (
	"errors"
	"net/http"

	"github.com/KennethRomeroLopez/proyecto-final/internal/database"
	"github.com/KennethRomeroLopez/proyecto-final/internal/logging"
	"github.com/KennethRomeroLopez/proyecto-final/internal/models"
	"github.com/KennethRomeroLopez/proyecto-final/internal/validation"
)

// movieForm carries the /gestion_peliculas create fields. Numeric
// fields arrive as decimal strings and are parsed before validation.
type movieForm struct {
	Titulo   string `validate:"required,max=256"`
	Duracion int    `validate:"required,min=1"`
	Genero   string `validate:"required,max=128"`
	Anio     int    `validate:"required,min=1888"`
}

// showForm carries the /gestion_series create fields.
type showForm struct {
	Titulo           string `validate:"required,max=256"`
	NumCapitulos     int    `validate:"required,min=1"`
	DuracionCapitulo int    `validate:"required,min=1"`
	NumTemporadas    int    `validate:"required,min=1"`
	Genero           string `validate:"required,max=128"`
	Anio             int    `validate:"required,min=1888"`
}

// CatalogoPeliculas lists every movie with its poster embedded.
func (h *Handler) CatalogoPeliculas(w http.ResponseWriter, r *http.Request) {
	movies, err := h.db.ListMovies(r.Context())
	if err != nil {
		respondInternalError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, map[string]interface{}{"movies": movies})
}

// CatalogoSeries lists every show with its poster embedded.
func (h *Handler) CatalogoSeries(w http.ResponseWriter, r *http.Request) {
	shows, err := h.db.ListShows(r.Context())
	if err != nil {
		respondInternalError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, map[string]interface{}{"shows": shows})
}

// GestionPeliculas serves the movie management listing.
func (h *Handler) GestionPeliculas(w http.ResponseWriter, r *http.Request) {
	h.CatalogoPeliculas(w, r)
}

// CrearPelicula creates a movie from a multipart form. Every field is
// required on create, the poster included.
func (h *Handler) CrearPelicula(w http.ResponseWriter, r *http.Request) {
	if !h.parseMultipartForm(w, r) {
		return
	}

	duracion, err := parseOptionalInt(r.FormValue("duracion"), "Duracion")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	anio, err := parseOptionalInt(r.FormValue("anio"), "Anio")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	form := movieForm{
		Titulo: r.FormValue("titulo"),
		Genero: r.FormValue("genero"),
	}
	if duracion != nil {
		form.Duracion = *duracion
	}
	if anio != nil {
		form.Anio = *anio
	}
	if verr := validation.ValidateStruct(&form); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	img, err := readImageUpload(r, "img")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "No se pudo leer la imagen", err)
		return
	}
	if img == nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "La imagen es obligatoria", nil)
		return
	}

	movie := &models.Movie{
		Img:      img.Data,
		ImgName:  img.Filename,
		Mimetype: img.Mimetype,
		Titulo:   form.Titulo,
		Duracion: form.Duracion,
		Genero:   form.Genero,
		Anio:     form.Anio,
	}
	if err := h.db.CreateMovie(r.Context(), movie); err != nil {
		respondInternalError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int64("movie_id", movie.ID).
		Str("titulo", sanitizeLogValue(movie.Titulo)).
		Msg("Movie created")

	redirect(w, r, "/gestion_peliculas")
}

// GestionSeries serves the show management listing.
func (h *Handler) GestionSeries(w http.ResponseWriter, r *http.Request) {
	h.CatalogoSeries(w, r)
}

// CrearSerie creates a show from a multipart form.
func (h *Handler) CrearSerie(w http.ResponseWriter, r *http.Request) {
	if !h.parseMultipartForm(w, r) {
		return
	}

	ints := map[string]*int{}
	for _, field := range []string{"NumCapitulos", "DuracionCapitulo", "NumTemporadas", "Anio"} {
		value, err := parseOptionalInt(r.FormValue(formName(field)), field)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		ints[field] = value
	}

	form := showForm{
		Titulo: r.FormValue("titulo"),
		Genero: r.FormValue("genero"),
	}
	assign := func(dst *int, key string) {
		if ints[key] != nil {
			*dst = *ints[key]
		}
	}
	assign(&form.NumCapitulos, "NumCapitulos")
	assign(&form.DuracionCapitulo, "DuracionCapitulo")
	assign(&form.NumTemporadas, "NumTemporadas")
	assign(&form.Anio, "Anio")

	if verr := validation.ValidateStruct(&form); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	img, err := readImageUpload(r, "img")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "No se pudo leer la imagen", err)
		return
	}
	if img == nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "La imagen es obligatoria", nil)
		return
	}

	show := &models.Show{
		Img:              img.Data,
		ImgName:          img.Filename,
		Mimetype:         img.Mimetype,
		Titulo:           form.Titulo,
		NumCapitulos:     form.NumCapitulos,
		DuracionCapitulo: form.DuracionCapitulo,
		NumTemporadas:    form.NumTemporadas,
		Genero:           form.Genero,
		Anio:             form.Anio,
	}
	if err := h.db.CreateShow(r.Context(), show); err != nil {
		respondInternalError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int64("show_id", show.ID).
		Str("titulo", sanitizeLogValue(show.Titulo)).
		Msg("Show created")

	redirect(w, r, "/gestion_series")
}

// EditarPeliculasPage serves the current state of the movie being
// edited so the form can be pre-filled.
func (h *Handler) EditarPeliculasPage(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Identificador inválido", nil)
		return
	}

	movie, err := h.db.GetMovieByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, "NOT_FOUND", "Película no encontrada", nil)
			return
		}
		respondInternalError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, map[string]interface{}{"movie": movie})
}

// EditarPeliculas applies a partial edit. Empty fields mean "leave
// unchanged"; a missing poster keeps the stored one.
func (h *Handler) EditarPeliculas(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Identificador inválido", nil)
		return
	}
	if !h.parseMultipartForm(w, r) {
		return
	}

	duracion, err := parseOptionalInt(r.FormValue("duracion"), "Duracion")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	anio, err := parseOptionalInt(r.FormValue("anio"), "Anio")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	upd := models.MovieUpdate{
		Titulo:   optionalString(r.FormValue("titulo")),
		Duracion: duracion,
		Genero:   optionalString(r.FormValue("genero")),
		Anio:     anio,
	}

	img, err := readImageUpload(r, "img")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "No se pudo leer la imagen", err)
		return
	}
	if img != nil {
		upd.Img = img.Data
		upd.ImgName = img.Filename
		upd.Mimetype = img.Mimetype
	}

	if err := h.db.UpdateMovie(r.Context(), id, upd); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, "NOT_FOUND", "Película no encontrada", nil)
			return
		}
		respondInternalError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("movie_id", id).Msg("Movie updated")
	redirect(w, r, "/gestion_peliculas")
}

// EditarSeriesPage serves the current state of the show being edited.
func (h *Handler) EditarSeriesPage(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Identificador inválido", nil)
		return
	}

	show, err := h.db.GetShowByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, "NOT_FOUND", "Serie no encontrada", nil)
			return
		}
		respondInternalError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, map[string]interface{}{"show": show})
}

// EditarSeries applies a partial edit to a show.
func (h *Handler) EditarSeries(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Identificador inválido", nil)
		return
	}
	if !h.parseMultipartForm(w, r) {
		return
	}

	upd := models.ShowUpdate{
		Titulo: optionalString(r.FormValue("titulo")),
		Genero: optionalString(r.FormValue("genero")),
	}
	for field, dst := range map[string]**int{
		"NumCapitulos":     &upd.NumCapitulos,
		"DuracionCapitulo": &upd.DuracionCapitulo,
		"NumTemporadas":    &upd.NumTemporadas,
		"Anio":             &upd.Anio,
	} {
		value, err := parseOptionalInt(r.FormValue(formName(field)), field)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		*dst = value
	}

	img, err := readImageUpload(r, "img")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "No se pudo leer la imagen", err)
		return
	}
	if img != nil {
		upd.Img = img.Data
		upd.ImgName = img.Filename
		upd.Mimetype = img.Mimetype
	}

	if err := h.db.UpdateShow(r.Context(), id, upd); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, "NOT_FOUND", "Serie no encontrada", nil)
			return
		}
		respondInternalError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("show_id", id).Msg("Show updated")
	redirect(w, r, "/gestion_series")
}

// EliminarPeliculas removes a movie and its relation rows. Deleting an
// id that no longer exists still redirects: the end state is the same.
func (h *Handler) EliminarPeliculas(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Identificador inválido", nil)
		return
	}

	if err := h.db.DeleteMovie(r.Context(), id); err != nil {
		respondInternalError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("movie_id", id).Msg("Movie deleted")
	redirect(w, r, "/gestion_peliculas")
}

// EliminarSeries removes a show and its relation rows; idempotent.
func (h *Handler) EliminarSeries(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Identificador inválido", nil)
		return
	}

	if err := h.db.DeleteShow(r.Context(), id); err != nil {
		respondInternalError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("show_id", id).Msg("Show deleted")
	redirect(w, r, "/gestion_series")
}

// formName maps a struct field name to its lowercase form field.
func formName(field string) string {
	switch field {
	case "NumCapitulos":
		return "num_capitulos"
	case "DuracionCapitulo":
		return "duracion_capitulo"
	case "NumTemporadas":
		return "num_temporadas"
	case "Anio":
		return "anio"
	case "Duracion":
		return "duracion"
	default:
		return field
	}
}
