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

const showColumns = `id, img, img_name, mimetype, titulo, num_capitulos, duracion_capitulo, num_temporadas, genero, anio`

// CreateShow inserts a new show. All fields are mandatory at creation.
// The generated ID is written back into s.
func (db *DB) CreateShow(ctx context.Context, s *models.Show) error {
	row := db.conn.QueryRowContext(ctx,
		`INSERT INTO shows (img, img_name, mimetype, titulo, num_capitulos, duracion_capitulo, num_temporadas, genero, anio)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		s.Img, s.ImgName, s.Mimetype, s.Titulo, s.NumCapitulos,
		s.DuracionCapitulo, s.NumTemporadas, s.Genero, s.Anio)
	if err := row.Scan(&s.ID); err != nil {
		return fmt.Errorf("failed to insert show: %w", err)
	}
	return nil
}

// GetShowByID fetches a show, or ErrNotFound.
func (db *DB) GetShowByID(ctx context.Context, id int64) (*models.Show, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+showColumns+` FROM shows WHERE id = ?`, id)
	var s models.Show
	err := row.Scan(&s.ID, &s.Img, &s.ImgName, &s.Mimetype, &s.Titulo,
		&s.NumCapitulos, &s.DuracionCapitulo, &s.NumTemporadas, &s.Genero, &s.Anio)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan show: %w", err)
	}
	return &s, nil
}

// ListShows returns the full catalog in insertion order.
func (db *DB) ListShows(ctx context.Context) ([]models.Show, error) {
	return db.queryShows(ctx, `SELECT `+showColumns+` FROM shows ORDER BY id`)
}

// SearchShowsByTitlePrefix returns shows whose titulo starts with term.
func (db *DB) SearchShowsByTitlePrefix(ctx context.Context, term string) ([]models.Show, error) {
	return db.queryShows(ctx,
		`SELECT `+showColumns+` FROM shows WHERE titulo LIKE ? ESCAPE '\' ORDER BY id`,
		escapeLike(term)+"%")
}

// UpdateShow applies a partial edit; nil fields stay unchanged.
// Returns ErrNotFound when the show does not exist.
func (db *DB) UpdateShow(ctx context.Context, id int64, upd models.ShowUpdate) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM shows WHERE id = ?`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check show: %w", err)
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
		if upd.NumCapitulos != nil {
			set = append(set, "num_capitulos = ?")
			args = append(args, *upd.NumCapitulos)
		}
		if upd.DuracionCapitulo != nil {
			set = append(set, "duracion_capitulo = ?")
			args = append(args, *upd.DuracionCapitulo)
		}
		if upd.NumTemporadas != nil {
			set = append(set, "num_temporadas = ?")
			args = append(args, *upd.NumTemporadas)
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
		query := "UPDATE shows SET " + strings.Join(set, ", ") + " WHERE id = ?"
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to update show %d: %w", id, err)
		}
		return nil
	})
}

// DeleteShow removes a show and its relation rows. Idempotent.
func (db *DB) DeleteShow(ctx context.Context, id int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		cleanups := []string{
			`DELETE FROM show_favorites WHERE show_id = ?`,
			`DELETE FROM show_watched WHERE show_id = ?`,
			`DELETE FROM shows WHERE id = ?`,
		}
		for _, stmt := range cleanups {
			if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
				return fmt.Errorf("failed to delete show %d: %w", id, err)
			}
		}
		return nil
	})
}

func (db *DB) queryShows(ctx context.Context, query string, args ...interface{}) ([]models.Show, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shows: %w", err)
	}
	defer rows.Close()
	return collectShows(rows)
}

func collectShows(rows *sql.Rows) ([]models.Show, error) {
	var shows []models.Show
	for rows.Next() {
		var s models.Show
		if err := rows.Scan(&s.ID, &s.Img, &s.ImgName, &s.Mimetype, &s.Titulo,
			&s.NumCapitulos, &s.DuracionCapitulo, &s.NumTemporadas, &s.Genero, &s.Anio); err != nil {
			return nil, fmt.Errorf("failed to scan show: %w", err)
		}
		shows = append(shows, s)
	}
	return shows, rows.Err()
}
