// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package database

import "errors"

// Store-level sentinel errors. Handlers translate these into the API
// error taxonomy; everything else surfaces as an internal error.
var (
	// ErrDuplicateUsername is returned when a registration or username
	// edit collides with an existing account. Recoverable: the caller
	// is told to pick another name.
	ErrDuplicateUsername = errors.New("username already in use")

	// ErrInvalidCredentials is returned on any login failure. The
	// caller cannot distinguish "no such user" from "wrong password".
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFound is returned when a lookup or edit target is absent.
	// Deletes stay idempotent and do not return it.
	ErrNotFound = errors.New("not found")
)
