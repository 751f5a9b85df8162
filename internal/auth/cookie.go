// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
)

// CookieCodec signs the session ID carried by the session cookie.
// The value is HMAC-signed, not encrypted: the session ID is opaque
// anyway, and signing is what prevents a client from minting or
// altering one.
type CookieCodec struct {
	sc     *securecookie.SecureCookie
	name   string
	secure bool
}

// NewCookieCodec builds a codec from a hex-encoded HMAC key. An empty
// key generates an ephemeral one, which invalidates outstanding
// cookies on restart.
func NewCookieCodec(name, hexKey string, secure bool) (*CookieCodec, error) {
	var key []byte
	if hexKey == "" {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, fmt.Errorf("failed to generate cookie hash key")
		}
	} else {
		var err error
		key, err = hex.DecodeString(hexKey)
		if err != nil {
			return nil, fmt.Errorf("session.hash_key is not valid hex: %w", err)
		}
		if len(key) < 32 {
			return nil, fmt.Errorf("session.hash_key must be at least 32 bytes, got %d", len(key))
		}
	}

	return &CookieCodec{
		// nil block key: sign only, no encryption
		sc:     securecookie.New(key, nil),
		name:   name,
		secure: secure,
	}, nil
}

// Name returns the cookie name.
func (c *CookieCodec) Name() string { return c.name }

// SetSessionCookie writes the signed session ID cookie.
func (c *CookieCodec) SetSessionCookie(w http.ResponseWriter, sessionID string, maxAge int) error {
	encoded, err := c.sc.Encode(c.name, sessionID)
	if err != nil {
		return fmt.Errorf("failed to encode session cookie: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ReadSessionID extracts and verifies the session ID from the request
// cookie. Returns "" when the cookie is absent or fails verification.
func (c *CookieCodec) ReadSessionID(r *http.Request) string {
	cookie, err := r.Cookie(c.name)
	if err != nil {
		return ""
	}
	var sessionID string
	if err := c.sc.Decode(c.name, cookie.Value, &sessionID); err != nil {
		return ""
	}
	return sessionID
}

// ClearSessionCookie expires the session cookie.
func (c *CookieCodec) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// GenerateHashKeyHex returns a fresh hex-encoded 32-byte HMAC key,
// suitable for the session.hash_key config value.
func GenerateHashKeyHex() (string, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}
