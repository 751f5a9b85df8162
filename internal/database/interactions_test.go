// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package database

import (
	"context"
	"testing"
)

// Marking twice inserts two rows; the list shows the title twice.
func TestDoubleFavoriteKeepsBothRows(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user, err := db.CreateUser(ctx, "kenneth", "secret42")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	movie := testMovie("Dune", 155)
	if err := db.CreateMovie(ctx, movie); err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	if err := db.MarkMovieFavorite(ctx, user.ID, movie.ID); err != nil {
		t.Fatalf("First MarkMovieFavorite failed: %v", err)
	}
	if err := db.MarkMovieFavorite(ctx, user.ID, movie.ID); err != nil {
		t.Fatalf("Second MarkMovieFavorite failed: %v", err)
	}

	favorites, err := db.ListFavoriteMovies(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListFavoriteMovies failed: %v", err)
	}
	if len(favorites) != 2 {
		t.Fatalf("Favorites = %d rows, want 2", len(favorites))
	}
	if favorites[0].ID != movie.ID || favorites[1].ID != movie.ID {
		t.Errorf("Favorites = %+v, want the same movie twice", favorites)
	}
}

// Marking a nonexistent id is a silent no-op, not an error.
func TestMarkUnknownTargetIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user, err := db.CreateUser(ctx, "kenneth", "secret42")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if err := db.MarkMovieFavorite(ctx, user.ID, 9999); err != nil {
		t.Fatalf("MarkMovieFavorite on unknown movie failed: %v", err)
	}
	if err := db.MarkShowWatched(ctx, user.ID, 9999); err != nil {
		t.Fatalf("MarkShowWatched on unknown show failed: %v", err)
	}

	favorites, err := db.ListFavoriteMovies(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListFavoriteMovies failed: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("Favorites after no-op marks = %d rows, want 0", len(favorites))
	}
}

// Favorites and watched are independent lists, per user.
func TestListsAreScopedPerUserAndKind(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	kenneth, err := db.CreateUser(ctx, "kenneth", "secret42")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	maria, err := db.CreateUser(ctx, "maria", "secret42")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	movie := testMovie("Dune", 155)
	if err := db.CreateMovie(ctx, movie); err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}
	show := testShow("Dark", 26, 50)
	if err := db.CreateShow(ctx, show); err != nil {
		t.Fatalf("CreateShow failed: %v", err)
	}

	if err := db.MarkMovieFavorite(ctx, kenneth.ID, movie.ID); err != nil {
		t.Fatalf("MarkMovieFavorite failed: %v", err)
	}
	if err := db.MarkShowFavorite(ctx, kenneth.ID, show.ID); err != nil {
		t.Fatalf("MarkShowFavorite failed: %v", err)
	}
	if err := db.MarkMovieWatched(ctx, maria.ID, movie.ID); err != nil {
		t.Fatalf("MarkMovieWatched failed: %v", err)
	}

	kennethFavorites, err := db.ListFavoriteMovies(ctx, kenneth.ID)
	if err != nil {
		t.Fatalf("ListFavoriteMovies failed: %v", err)
	}
	if len(kennethFavorites) != 1 {
		t.Errorf("kenneth favorite movies = %d, want 1", len(kennethFavorites))
	}

	kennethWatched, err := db.ListWatchedMovies(ctx, kenneth.ID)
	if err != nil {
		t.Fatalf("ListWatchedMovies failed: %v", err)
	}
	if len(kennethWatched) != 0 {
		t.Errorf("kenneth watched movies = %d, want 0", len(kennethWatched))
	}

	mariaWatched, err := db.ListWatchedMovies(ctx, maria.ID)
	if err != nil {
		t.Fatalf("ListWatchedMovies failed: %v", err)
	}
	if len(mariaWatched) != 1 {
		t.Errorf("maria watched movies = %d, want 1", len(mariaWatched))
	}

	kennethShows, err := db.ListFavoriteShows(ctx, kenneth.ID)
	if err != nil {
		t.Fatalf("ListFavoriteShows failed: %v", err)
	}
	if len(kennethShows) != 1 || kennethShows[0].Titulo != "Dark" {
		t.Errorf("kenneth favorite shows = %+v, want only Dark", kennethShows)
	}
}
