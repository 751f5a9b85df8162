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

// WatchStats computes the per-user aggregates behind /estadisticas.
//
// Counts count watch relation rows, so a title marked watched twice
// counts twice. Movie minutes sum duracion over relation rows. Show
// minutes sum num_capitulos * duracion_capitulo per relation row: one
// watched mark on a show counts the whole series, not one episode.
func (db *DB) WatchStats(ctx context.Context, userID int64) (*models.WatchStats, error) {
	stats := &models.WatchStats{}

	err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(m.duracion), 0)
		 FROM movie_watched w JOIN movies m ON m.id = w.movie_id
		 WHERE w.user_id = ?`, userID).
		Scan(&stats.WatchedMovieCount, &stats.TotalMovieMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate watched movies: %w", err)
	}

	err = db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(s.num_capitulos * s.duracion_capitulo), 0)
		 FROM show_watched w JOIN shows s ON s.id = w.show_id
		 WHERE w.user_id = ?`, userID).
		Scan(&stats.WatchedShowCount, &stats.TotalShowMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate watched shows: %w", err)
	}

	return stats, nil
}
