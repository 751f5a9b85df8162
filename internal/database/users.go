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

	"github.com/KennethRomeroLopez/proyecto-final/internal/auth"
	"github.com/KennethRomeroLopez/proyecto-final/internal/models"
)

// CreateUser registers a new account with a bcrypt-hashed password.
// The first account ever created is bootstrapped as admin; everyone
// after that is a member. Returns ErrDuplicateUsername when the name
// is taken; the transaction is rolled back before the error surfaces.
func (db *DB) CreateUser(ctx context.Context, username, rawPassword string) (*models.User, error) {
	hash, err := auth.HashPassword(rawPassword, db.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, PasswordHash: hash}

	err = db.withTx(ctx, func(tx *sql.Tx) error {
		var existing int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&existing); err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		user.Role = models.RoleMember
		if existing == 0 {
			user.Role = models.RoleAdmin
		}

		// ON CONFLICT DO NOTHING yields no row on a duplicate username,
		// which avoids matching on driver error strings.
		row := tx.QueryRowContext(ctx,
			`INSERT INTO users (username, password_hash, role)
			 VALUES (?, ?, ?)
			 ON CONFLICT (username) DO NOTHING
			 RETURNING id`,
			user.Username, user.PasswordHash, user.Role)

		if err := row.Scan(&user.ID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrDuplicateUsername
			}
			return fmt.Errorf("failed to insert user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair. Any failure returns
// ErrInvalidCredentials; the unknown-username path still burns a bcrypt
// comparison so response timing does not reveal whether the account
// exists.
func (db *DB) Authenticate(ctx context.Context, username, rawPassword string) (*models.User, error) {
	user, err := db.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			auth.CheckDummyPassword(rawPassword)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, rawPassword) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUserByID fetches a user by ID, or ErrNotFound.
func (db *DB) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return db.scanUser(db.conn.QueryRowContext(ctx,
		`SELECT id, username, password_hash, role FROM users WHERE id = ?`, id))
}

// GetUserByUsername fetches a user by username, or ErrNotFound.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return db.scanUser(db.conn.QueryRowContext(ctx,
		`SELECT id, username, password_hash, role FROM users WHERE username = ?`, username))
}

func (db *DB) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}

// ListUsers returns all accounts in creation order.
func (db *DB) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, username, password_hash, role FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// UpdateUser edits an account. Empty newUsername or newPassword means
// "leave unchanged"; a supplied password is re-hashed. Returns
// ErrNotFound for a missing account and ErrDuplicateUsername when the
// new name collides with another account.
func (db *DB) UpdateUser(ctx context.Context, id int64, newUsername, newPassword string) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		var current string
		err := tx.QueryRowContext(ctx, `SELECT username FROM users WHERE id = ?`, id).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}

		if newUsername != "" && newUsername != current {
			var taken int
			err := tx.QueryRowContext(ctx,
				`SELECT COUNT(*) FROM users WHERE username = ? AND id <> ?`,
				newUsername, id).Scan(&taken)
			if err != nil {
				return fmt.Errorf("failed to check username: %w", err)
			}
			if taken > 0 {
				return ErrDuplicateUsername
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE users SET username = ? WHERE id = ?`, newUsername, id); err != nil {
				return fmt.Errorf("failed to update username: %w", err)
			}
		}

		if newPassword != "" {
			hash, err := auth.HashPassword(newPassword, db.bcryptCost)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE users SET password_hash = ? WHERE id = ?`, hash, id); err != nil {
				return fmt.Errorf("failed to update password: %w", err)
			}
		}

		return nil
	})
}

// DeleteUser removes an account and all of its favorite/watched
// relation rows in one transaction. Deleting a missing account is a
// no-op.
func (db *DB) DeleteUser(ctx context.Context, id int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		cleanups := []string{
			`DELETE FROM movie_favorites WHERE user_id = ?`,
			`DELETE FROM movie_watched WHERE user_id = ?`,
			`DELETE FROM show_favorites WHERE user_id = ?`,
			`DELETE FROM show_watched WHERE user_id = ?`,
			`DELETE FROM users WHERE id = ?`,
		}
		for _, stmt := range cleanups {
			if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
				return fmt.Errorf("failed to delete user %d: %w", id, err)
			}
		}
		return nil
	})
}
