// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package database

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/KennethRomeroLopez/proyecto-final/internal/models"
)

func TestCreateAndGetMovie(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	movie := testMovie("Dune", 155)
	if err := db.CreateMovie(ctx, movie); err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}
	if movie.ID == 0 {
		t.Fatal("CreateMovie did not assign an id")
	}

	got, err := db.GetMovieByID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("GetMovieByID failed: %v", err)
	}
	if got.Titulo != "Dune" || got.Duracion != 155 || got.Anio != 2021 {
		t.Errorf("GetMovieByID = %+v, want the inserted movie", got)
	}
	if !bytes.Equal(got.Img, movie.Img) {
		t.Error("Stored image bytes differ from the upload")
	}
	if got.Mimetype != "image/png" {
		t.Errorf("Mimetype = %q, want image/png", got.Mimetype)
	}
}

func TestGetMovieByIDNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetMovieByID(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetMovieByID error = %v, want ErrNotFound", err)
	}
}

func TestListMoviesInsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	titles := []string{"Dune", "Arrival", "Blade Runner 2049"}
	for _, titulo := range titles {
		if err := db.CreateMovie(ctx, testMovie(titulo, 120)); err != nil {
			t.Fatalf("CreateMovie(%q) failed: %v", titulo, err)
		}
	}

	movies, err := db.ListMovies(ctx)
	if err != nil {
		t.Fatalf("ListMovies failed: %v", err)
	}
	if len(movies) != len(titles) {
		t.Fatalf("ListMovies returned %d movies, want %d", len(movies), len(titles))
	}
	for i, titulo := range titles {
		if movies[i].Titulo != titulo {
			t.Errorf("movies[%d].Titulo = %q, want %q", i, movies[i].Titulo, titulo)
		}
	}
}

// Only supplied fields change; empty means keep the stored value.
func TestUpdateMoviePartial(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	movie := testMovie("Dunne", 155)
	if err := db.CreateMovie(ctx, movie); err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	titulo := "Dune"
	if err := db.UpdateMovie(ctx, movie.ID, models.MovieUpdate{Titulo: &titulo}); err != nil {
		t.Fatalf("UpdateMovie failed: %v", err)
	}

	got, err := db.GetMovieByID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("GetMovieByID failed: %v", err)
	}
	if got.Titulo != "Dune" {
		t.Errorf("Titulo = %q, want Dune", got.Titulo)
	}
	if got.Duracion != 155 || got.Genero != movie.Genero || got.Anio != movie.Anio {
		t.Errorf("Untouched fields changed: %+v", got)
	}
	if !bytes.Equal(got.Img, movie.Img) {
		t.Error("Image changed on a text-only edit")
	}
}

func TestUpdateMovieNoFields(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	movie := testMovie("Dune", 155)
	if err := db.CreateMovie(ctx, movie); err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	// An all-empty update touches nothing and succeeds.
	if err := db.UpdateMovie(ctx, movie.ID, models.MovieUpdate{}); err != nil {
		t.Fatalf("Empty UpdateMovie failed: %v", err)
	}

	got, err := db.GetMovieByID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("GetMovieByID failed: %v", err)
	}
	if got.Titulo != "Dune" || got.Duracion != 155 {
		t.Errorf("Empty update changed the row: %+v", got)
	}
}

func TestUpdateMovieNotFound(t *testing.T) {
	db := setupTestDB(t)

	titulo := "Dune"
	err := db.UpdateMovie(context.Background(), 42, models.MovieUpdate{Titulo: &titulo})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateMovie error = %v, want ErrNotFound", err)
	}
}

func TestDeleteMovieIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	movie := testMovie("Dune", 155)
	if err := db.CreateMovie(ctx, movie); err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}
	other := testMovie("Arrival", 116)
	if err := db.CreateMovie(ctx, other); err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	if err := db.DeleteMovie(ctx, movie.ID); err != nil {
		t.Fatalf("DeleteMovie failed: %v", err)
	}
	// Deleting an id that no longer exists must not error and must not
	// disturb the rest of the catalog.
	if err := db.DeleteMovie(ctx, movie.ID); err != nil {
		t.Fatalf("Second DeleteMovie failed: %v", err)
	}
	if err := db.DeleteMovie(ctx, 9999); err != nil {
		t.Fatalf("DeleteMovie of unknown id failed: %v", err)
	}

	movies, err := db.ListMovies(ctx)
	if err != nil {
		t.Fatalf("ListMovies failed: %v", err)
	}
	if len(movies) != 1 || movies[0].Titulo != "Arrival" {
		t.Errorf("Catalog after deletes = %+v, want only Arrival", movies)
	}
}

func TestSearchMoviesByTitlePrefix(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, titulo := range []string{"Dune", "Dune: Part Two", "Arrakis"} {
		if err := db.CreateMovie(ctx, testMovie(titulo, 120)); err != nil {
			t.Fatalf("CreateMovie(%q) failed: %v", titulo, err)
		}
	}

	matches, err := db.SearchMoviesByTitlePrefix(ctx, "Du")
	if err != nil {
		t.Fatalf("SearchMoviesByTitlePrefix failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Search returned %d movies, want 2", len(matches))
	}
	for _, m := range matches {
		if m.Titulo == "Arrakis" {
			t.Error("Prefix search matched a non-prefix title")
		}
	}
}

// LIKE wildcards in the search term are literals, not patterns.
func TestSearchMoviesEscapesWildcards(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, titulo := range []string{"100% Lobo", "1917"} {
		if err := db.CreateMovie(ctx, testMovie(titulo, 90)); err != nil {
			t.Fatalf("CreateMovie(%q) failed: %v", titulo, err)
		}
	}

	matches, err := db.SearchMoviesByTitlePrefix(ctx, "100%")
	if err != nil {
		t.Fatalf("SearchMoviesByTitlePrefix failed: %v", err)
	}
	if len(matches) != 1 || matches[0].Titulo != "100% Lobo" {
		t.Errorf("Search for %q = %+v, want only 100%% Lobo", "100%", matches)
	}

	matches, err = db.SearchMoviesByTitlePrefix(ctx, "1%")
	if err != nil {
		t.Fatalf("SearchMoviesByTitlePrefix failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Search for %q matched %d movies, want 0", "1%", len(matches))
	}
}

func TestCreateAndUpdateShow(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	show := testShow("Dark", 26, 50)
	if err := db.CreateShow(ctx, show); err != nil {
		t.Fatalf("CreateShow failed: %v", err)
	}
	if show.ID == 0 {
		t.Fatal("CreateShow did not assign an id")
	}

	temporadas := 3
	if err := db.UpdateShow(ctx, show.ID, models.ShowUpdate{NumTemporadas: &temporadas}); err != nil {
		t.Fatalf("UpdateShow failed: %v", err)
	}

	got, err := db.GetShowByID(ctx, show.ID)
	if err != nil {
		t.Fatalf("GetShowByID failed: %v", err)
	}
	if got.NumTemporadas != 3 {
		t.Errorf("NumTemporadas = %d, want 3", got.NumTemporadas)
	}
	if got.NumCapitulos != 26 || got.DuracionCapitulo != 50 {
		t.Errorf("Untouched fields changed: %+v", got)
	}
}

func TestSearchShowsByTitlePrefix(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, titulo := range []string{"Dark", "The Wire"} {
		if err := db.CreateShow(ctx, testShow(titulo, 10, 45)); err != nil {
			t.Fatalf("CreateShow(%q) failed: %v", titulo, err)
		}
	}

	matches, err := db.SearchShowsByTitlePrefix(ctx, "Da")
	if err != nil {
		t.Fatalf("SearchShowsByTitlePrefix failed: %v", err)
	}
	if len(matches) != 1 || matches[0].Titulo != "Dark" {
		t.Errorf("Search = %+v, want only Dark", matches)
	}
}

func TestDeleteShowCascades(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user, err := db.CreateUser(ctx, "kenneth", "secret42")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	show := testShow("Dark", 26, 50)
	if err := db.CreateShow(ctx, show); err != nil {
		t.Fatalf("CreateShow failed: %v", err)
	}
	if err := db.MarkShowWatched(ctx, user.ID, show.ID); err != nil {
		t.Fatalf("MarkShowWatched failed: %v", err)
	}

	if err := db.DeleteShow(ctx, show.ID); err != nil {
		t.Fatalf("DeleteShow failed: %v", err)
	}

	watched, err := db.ListWatchedShows(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListWatchedShows failed: %v", err)
	}
	if len(watched) != 0 {
		t.Errorf("Watched shows after delete = %d rows, want 0", len(watched))
	}
}
