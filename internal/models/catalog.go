// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package models

// Movie is a catalog entry for a film. The poster image is stored
// inline; []byte fields marshal to base64 in JSON, which is how images
// are delivered back to clients.
type Movie struct {
	ID       int64  `json:"id"`
	Img      []byte `json:"img"`
	ImgName  string `json:"img_name"`
	Mimetype string `json:"mimetype"`
	Titulo   string `json:"titulo"`
	Duracion int    `json:"duracion"` // minutes
	Genero   string `json:"genero"`
	Anio     int    `json:"anio"`
}

// Show is a catalog entry for a series.
type Show struct {
	ID               int64  `json:"id"`
	Img              []byte `json:"img"`
	ImgName          string `json:"img_name"`
	Mimetype         string `json:"mimetype"`
	Titulo           string `json:"titulo"`
	NumCapitulos     int    `json:"num_capitulos"`
	DuracionCapitulo int    `json:"duracion_capitulo"` // minutes per episode
	NumTemporadas    int    `json:"num_temporadas"`
	Genero           string `json:"genero"`
	Anio             int    `json:"anio"`
}

// MovieUpdate describes a partial edit of a movie. Nil pointers and a
// nil image mean "leave unchanged"; an empty submitted form value never
// clears a stored field.
type MovieUpdate struct {
	Img      []byte
	ImgName  string
	Mimetype string
	Titulo   *string
	Duracion *int
	Genero   *string
	Anio     *int
}

// ShowUpdate describes a partial edit of a show.
type ShowUpdate struct {
	Img              []byte
	ImgName          string
	Mimetype         string
	Titulo           *string
	NumCapitulos     *int
	DuracionCapitulo *int
	NumTemporadas    *int
	Genero           *string
	Anio             *int
}

// WatchStats holds the per-user aggregates behind /estadisticas.
// Counts count watch relation rows, so marking the same title watched
// twice counts twice. Show minutes are full-series totals
// (episodes x episode duration) per relation row.
type WatchStats struct {
	WatchedMovieCount int `json:"watched_movie_count"`
	WatchedShowCount  int `json:"watched_show_count"`
	TotalMovieMinutes int `json:"total_movie_minutes"`
	TotalShowMinutes  int `json:"total_show_minutes"`
}
