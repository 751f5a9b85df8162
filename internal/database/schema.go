// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package database

import (
	"context"
	"fmt"
)

// The schema is created in full at startup; all columns live in the
// initial CREATE TABLE statements (no incremental migrations yet).
//
// The four relation tables deliberately carry NO uniqueness constraint
// over (user_id, movie_id/show_id): pressing "favorite" twice inserts
// two rows, and duplicate rows count twice in the watch statistics.
// That matches the original system's observable behavior.
func (db *DB) createSchema(ctx context.Context) error {
	statements := []string{
		`CREATE SEQUENCE IF NOT EXISTS users_id_seq`,
		`CREATE SEQUENCE IF NOT EXISTS movies_id_seq`,
		`CREATE SEQUENCE IF NOT EXISTS shows_id_seq`,
		`CREATE SEQUENCE IF NOT EXISTS movie_favorites_id_seq`,
		`CREATE SEQUENCE IF NOT EXISTS movie_watched_id_seq`,
		`CREATE SEQUENCE IF NOT EXISTS show_favorites_id_seq`,
		`CREATE SEQUENCE IF NOT EXISTS show_watched_id_seq`,

		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT PRIMARY KEY DEFAULT nextval('users_id_seq'),
			username VARCHAR NOT NULL UNIQUE,
			password_hash VARCHAR NOT NULL,
			role VARCHAR NOT NULL DEFAULT 'member'
		)`,

		`CREATE TABLE IF NOT EXISTS movies (
			id BIGINT PRIMARY KEY DEFAULT nextval('movies_id_seq'),
			img BLOB NOT NULL,
			img_name VARCHAR NOT NULL,
			mimetype VARCHAR NOT NULL,
			titulo VARCHAR NOT NULL,
			duracion INTEGER NOT NULL,
			genero VARCHAR NOT NULL,
			anio INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS shows (
			id BIGINT PRIMARY KEY DEFAULT nextval('shows_id_seq'),
			img BLOB NOT NULL,
			img_name VARCHAR NOT NULL,
			mimetype VARCHAR NOT NULL,
			titulo VARCHAR NOT NULL,
			num_capitulos INTEGER NOT NULL,
			duracion_capitulo INTEGER NOT NULL,
			num_temporadas INTEGER NOT NULL,
			genero VARCHAR NOT NULL,
			anio INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS movie_favorites (
			id BIGINT PRIMARY KEY DEFAULT nextval('movie_favorites_id_seq'),
			user_id BIGINT NOT NULL,
			movie_id BIGINT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS movie_watched (
			id BIGINT PRIMARY KEY DEFAULT nextval('movie_watched_id_seq'),
			user_id BIGINT NOT NULL,
			movie_id BIGINT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS show_favorites (
			id BIGINT PRIMARY KEY DEFAULT nextval('show_favorites_id_seq'),
			user_id BIGINT NOT NULL,
			show_id BIGINT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS show_watched (
			id BIGINT PRIMARY KEY DEFAULT nextval('show_watched_id_seq'),
			user_id BIGINT NOT NULL,
			show_id BIGINT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_movie_favorites_user ON movie_favorites (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_movie_watched_user ON movie_watched (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_show_favorites_user ON show_favorites (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_show_watched_user ON show_watched (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_movies_titulo ON movies (titulo)`,
		`CREATE INDEX IF NOT EXISTS idx_shows_titulo ON shows (titulo)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %s: %w", stmt, err)
		}
	}
	return nil
}
