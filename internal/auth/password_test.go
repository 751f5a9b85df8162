// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret42", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "secret42" {
		t.Fatal("Hash must not equal the raw password")
	}

	if !CheckPassword(hash, "secret42") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "wrongpass") {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestHashPasswordDefaultCost(t *testing.T) {
	// Cost 0 falls back to the default; the hash must still verify.
	hash, err := HashPassword("secret42", 0)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPassword(hash, "secret42") {
		t.Error("CheckPassword rejected the correct password")
	}
}

// The dummy compare burns a real bcrypt run so login timing does not
// reveal whether a username exists. It must not panic on any input.
func TestCheckDummyPassword(t *testing.T) {
	CheckDummyPassword("secret42")
	CheckDummyPassword("")
}
