// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

// Package models defines the domain entities shared across the
// application: users and their roles, catalog entries (movies and
// shows), aggregate watch statistics, and the standard API response
// envelope used by all HTTP endpoints.
//
// Entities are plain structs with no behavior beyond small helpers;
// all persistence and querying lives in internal/database.
package models
