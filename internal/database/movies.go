// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/KennethRomeroLopez/proyecto-final/internal/models"
)

const movieColumns = `id, img, img_name, mimetype, titulo, duracion, genero, anio`

// CreateMovie inserts a new movie. All fields are mandatory at
// creation; the caller validates before reaching the store. The
// generated ID is written back into m.
func (db *DB) CreateMovie(ctx context.Context, m *models.Movie) error {
	row := db.conn.QueryRowContext(ctx,
		`INSERT INTO movies (img, img_name, mimetype, titulo, duracion, genero, anio)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		m.Img, m.ImgName, m.Mimetype, m.Titulo, m.Duracion, m.Genero, m.Anio)
	if err := row.Scan(&m.ID); err != nil {
		return fmt.Errorf("failed to insert movie: %w", err)
	}
	return nil
}

// GetMovieByID fetches a movie, or ErrNotFound.
func (db *DB) GetMovieByID(ctx context.Context, id int64) (*models.Movie, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE id = ?`, id)
	movie, err := scanMovie(row)
	if err != nil {
		return nil, err
	}
	return movie, nil
}

// ListMovies returns the full catalog in insertion order. No
// pagination; the catalog is expected to stay small.
func (db *DB) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return db.queryMovies(ctx, `SELECT `+movieColumns+` FROM movies ORDER BY id`)
}

// SearchMoviesByTitlePrefix returns movies whose titulo starts with
// term.
func (db *DB) SearchMoviesByTitlePrefix(ctx context.Context, term string) ([]models.Movie, error) {
	return db.queryMovies(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE titulo LIKE ? ESCAPE '\' ORDER BY id`,
		escapeLike(term)+"%")
}

// UpdateMovie applies a partial edit. Nil fields in upd are left
// unchanged — an empty form value never clears a stored one. Returns
// ErrNotFound when the movie does not exist.
func (db *DB) UpdateMovie(ctx context.Context, id int64, upd models.MovieUpdate) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM movies WHERE id = ?`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check movie: %w", err)
		}
		if exists == 0 {
			return ErrNotFound
		}

		set := []string{}
		args := []interface{}{}
		if upd.Img != nil {
			set = append(set, "img = ?", "img_name = ?", "mimetype = ?")
			args = append(args, upd.Img, upd.ImgName, upd.Mimetype)
		}
		if upd.Titulo != nil {
			set = append(set, "titulo = ?")
			args = append(args, *upd.Titulo)
		}
		if upd.Duracion != nil {
			set = append(set, "duracion = ?")
			args = append(args, *upd.Duracion)
		}
		if upd.Genero != nil {
			set = append(set, "genero = ?")
			args = append(args, *upd.Genero)
		}
		if upd.Anio != nil {
			set = append(set, "anio = ?")
			args = append(args, *upd.Anio)
		}
		if len(set) == 0 {
			return nil
		}

		args = append(args, id)
		query := "UPDATE movies SET " + strings.Join(set, ", ") + " WHERE id = ?"
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to update movie %d: %w", id, err)
		}
		return nil
	})
}

// DeleteMovie removes a movie and its relation rows. Deleting an
// absent movie is a no-op.
func (db *DB) DeleteMovie(ctx context.Context, id int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		cleanups := []string{
			`DELETE FROM movie_favorites WHERE movie_id = ?`,
			`DELETE FROM movie_watched WHERE movie_id = ?`,
			`DELETE FROM movies WHERE id = ?`,
		}
		for _, stmt := range cleanups {
			if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
				return fmt.Errorf("failed to delete movie %d: %w", id, err)
			}
		}
		return nil
	})
}

func (db *DB) queryMovies(ctx context.Context, query string, args ...interface{}) ([]models.Movie, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()
	return collectMovies(rows)
}

func collectMovies(rows *sql.Rows) ([]models.Movie, error) {
	var movies []models.Movie
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Img, &m.ImgName, &m.Mimetype,
			&m.Titulo, &m.Duracion, &m.Genero, &m.Anio); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func scanMovie(row *sql.Row) (*models.Movie, error) {
	var m models.Movie
	err := row.Scan(&m.ID, &m.Img, &m.ImgName, &m.Mimetype,
		&m.Titulo, &m.Duracion, &m.Genero, &m.Anio)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan movie: %w", err)
	}
	return &m, nil
}
