// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package database

import (
	"context"
	"fmt"

	"github.com/KennethRomeroLopez/proyecto-final/internal/models"
)

// Interaction marks insert one relation row per press, with no
// deduplication: favoriting the same movie twice leaves two rows, and
// both count in the statistics. When the target entity does not exist
// the mark is a silent no-op — the INSERT ... SELECT matches zero
// rows, so existence check and insert are a single atomic statement.

// MarkMovieFavorite records a favorite relation for the user.
func (db *DB) MarkMovieFavorite(ctx context.Context, userID, movieID int64) error {
	return db.markRelation(ctx,
		`INSERT INTO movie_favorites (user_id, movie_id)
		 SELECT ?, id FROM movies WHERE id = ?`, userID, movieID)
}

// MarkMovieWatched records a watched relation for the user.
func (db *DB) MarkMovieWatched(ctx context.Context, userID, movieID int64) error {
	return db.markRelation(ctx,
		`INSERT INTO movie_watched (user_id, movie_id)
		 SELECT ?, id FROM movies WHERE id = ?`, userID, movieID)
}

// MarkShowFavorite records a favorite relation for the user.
func (db *DB) MarkShowFavorite(ctx context.Context, userID, showID int64) error {
	return db.markRelation(ctx,
		`INSERT INTO show_favorites (user_id, show_id)
		 SELECT ?, id FROM shows WHERE id = ?`, userID, showID)
}

// MarkShowWatched records a watched relation for the user.
func (db *DB) MarkShowWatched(ctx context.Context, userID, showID int64) error {
	return db.markRelation(ctx,
		`INSERT INTO show_watched (user_id, show_id)
		 SELECT ?, id FROM shows WHERE id = ?`, userID, showID)
}

func (db *DB) markRelation(ctx context.Context, query string, userID, targetID int64) error {
	if _, err := db.conn.ExecContext(ctx, query, userID, targetID); err != nil {
		return fmt.Errorf("failed to mark relation: %w", err)
	}
	return nil
}

// ListFavoriteMovies returns the user's favorited movies in the order
// the favorites were added, duplicates included.
func (db *DB) ListFavoriteMovies(ctx context.Context, userID int64) ([]models.Movie, error) {
	return db.queryMovies(ctx,
		`SELECT m.id, m.img, m.img_name, m.mimetype, m.titulo, m.duracion, m.genero, m.anio
		 FROM movie_favorites f JOIN movies m ON m.id = f.movie_id
		 WHERE f.user_id = ? ORDER BY f.id`, userID)
}

// ListWatchedMovies returns the user's watched movies in mark order,
// duplicates included.
func (db *DB) ListWatchedMovies(ctx context.Context, userID int64) ([]models.Movie, error) {
	return db.queryMovies(ctx,
		`SELECT m.id, m.img, m.img_name, m.mimetype, m.titulo, m.duracion, m.genero, m.anio
		 FROM movie_watched w JOIN movies m ON m.id = w.movie_id
		 WHERE w.user_id = ? ORDER BY w.id`, userID)
}

// ListFavoriteShows returns the user's favorited shows in mark order.
func (db *DB) ListFavoriteShows(ctx context.Context, userID int64) ([]models.Show, error) {
	return db.queryShows(ctx,
		`SELECT s.id, s.img, s.img_name, s.mimetype, s.titulo, s.num_capitulos, s.duracion_capitulo, s.num_temporadas, s.genero, s.anio
		 FROM show_favorites f JOIN shows s ON s.id = f.show_id
		 WHERE f.user_id = ? ORDER BY f.id`, userID)
}

// ListWatchedShows returns the user's watched shows in mark order.
func (db *DB) ListWatchedShows(ctx context.Context, userID int64) ([]models.Show, error) {
	return db.queryShows(ctx,
		`SELECT s.id, s.img, s.img_name, s.mimetype, s.titulo, s.num_capitulos, s.duracion_capitulo, s.num_temporadas, s.genero, s.anio
		 FROM show_watched w JOIN shows s ON s.id = w.show_id
		 WHERE w.user_id = ? ORDER BY w.id`, userID)
}
