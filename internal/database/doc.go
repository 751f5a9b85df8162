// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

// Package database is the durable store for the application, backed by
// embedded DuckDB via database/sql.
//
// It exposes repository-style methods on *DB, grouped by concern:
//
//   - users.go: credential store (register, authenticate, edit, delete)
//   - movies.go, shows.go: catalog entries with inline poster images
//   - interactions.go: per-user favorite/watched relation rows
//   - stats.go: per-user watch aggregates
//
// Every multi-statement write runs inside a transaction that is rolled
// back before an error is surfaced, so no partial write is observable.
// Queries return plain models structs; there is no lazy loading or
// hidden relationship traversal.
package database
