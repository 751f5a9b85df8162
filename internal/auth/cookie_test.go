// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestCodec(t *testing.T) *CookieCodec {
	t.Helper()
	key, err := GenerateHashKeyHex()
	if err != nil {
		t.Fatalf("GenerateHashKeyHex failed: %v", err)
	}
	codec, err := NewCookieCodec("session_id", key, false)
	if err != nil {
		t.Fatalf("NewCookieCodec failed: %v", err)
	}
	return codec
}

func TestCookieRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	rec := httptest.NewRecorder()
	if err := codec.SetSessionCookie(rec, "abc123", 3600); err != nil {
		t.Fatalf("SetSessionCookie failed: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}

	if got := codec.ReadSessionID(r); got != "abc123" {
		t.Errorf("ReadSessionID = %q, want abc123", got)
	}
}

// A modified cookie value fails signature verification and reads as
// anonymous, never as another session.
func TestCookieTamperRejected(t *testing.T) {
	codec := newTestCodec(t)

	rec := httptest.NewRecorder()
	if err := codec.SetSessionCookie(rec, "abc123", 3600); err != nil {
		t.Fatalf("SetSessionCookie failed: %v", err)
	}
	cookie := rec.Result().Cookies()[0]

	tampered := []byte(cookie.Value)
	tampered[len(tampered)/2] ^= 0x01
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: cookie.Name, Value: string(tampered)})

	if got := codec.ReadSessionID(r); got != "" {
		t.Errorf("ReadSessionID of tampered cookie = %q, want empty", got)
	}
}

// Two codecs with different keys must not accept each other's cookies.
func TestCookieWrongKeyRejected(t *testing.T) {
	codecA := newTestCodec(t)
	codecB := newTestCodec(t)

	rec := httptest.NewRecorder()
	if err := codecA.SetSessionCookie(rec, "abc123", 3600); err != nil {
		t.Fatalf("SetSessionCookie failed: %v", err)
	}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}

	if got := codecB.ReadSessionID(r); got != "" {
		t.Errorf("ReadSessionID with wrong key = %q, want empty", got)
	}
}

func TestClearSessionCookie(t *testing.T) {
	codec := newTestCodec(t)

	rec := httptest.NewRecorder()
	codec.ClearSessionCookie(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("ClearSessionCookie set %d cookies, want 1", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Errorf("Cleared cookie MaxAge = %d, want -1", cookies[0].MaxAge)
	}
}

func TestNewCookieCodecRejectsShortKey(t *testing.T) {
	if _, err := NewCookieCodec("session_id", "abcd", false); err == nil {
		t.Fatal("NewCookieCodec accepted a short key")
	}
	if _, err := NewCookieCodec("session_id", strings.Repeat("zz", 32), false); err == nil {
		t.Fatal("NewCookieCodec accepted a non-hex key")
	}
}
