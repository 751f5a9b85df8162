// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost balances login latency against brute-force cost.
const DefaultBcryptCost = 12

// dummyHash is a valid bcrypt hash compared against when a username
// does not exist, so login failures take the same time whether or not
// the account exists.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// HashPassword hashes a raw password with bcrypt at the given cost.
// A cost outside bcrypt's range falls back to DefaultBcryptCost.
func HashPassword(raw string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether raw matches the stored bcrypt hash.
func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}

// CheckDummyPassword burns the same bcrypt work as a real verification.
// Called on the unknown-username path of authentication.
func CheckDummyPassword(raw string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(raw))
}
