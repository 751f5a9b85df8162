// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

// Package auth implements the session/auth gate: bcrypt password
// hashing, server-side sessions (in-memory or BadgerDB-backed), the
// HMAC-signed session cookie, flash notices, and the HTTP middleware
// that resolves a cookie back to a logged-in user on every request.
//
// The per-request state machine is Anonymous -> Authenticated on
// login and back on logout. Resolution failures of any kind (missing
// cookie, bad signature, unknown or expired session) fail open to
// Anonymous; RequireAuth then redirects to /login with a flash notice.
package auth
