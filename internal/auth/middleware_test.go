// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KennethRomeroLopez/proyecto-final/internal/models"
)

// fakeUsers resolves ids from a fixed map, standing in for the
// database during middleware tests.
type fakeUsers struct {
	users map[int64]*models.User
}

func (f *fakeUsers) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

func newTestMiddleware(t *testing.T, users map[int64]*models.User) *SessionMiddleware {
	t.Helper()
	return NewSessionMiddleware(
		NewMemorySessionStore(),
		newTestCodec(t),
		&fakeUsers{users: users},
		SessionMiddlewareConfig{SessionTTL: time.Hour},
	)
}

// loginAs issues a session and returns the Set-Cookie to replay.
func loginAs(t *testing.T, m *SessionMiddleware, user *models.User) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	if _, err := m.IssueSession(context.Background(), rec, user); err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("IssueSession set no cookie")
	}
	return cookies[0]
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	m := newTestMiddleware(t, nil)

	handler := m.Authenticate(m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Protected handler ran for an anonymous request")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contents", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestRequireAuthPassesSessionUser(t *testing.T) {
	user := &models.User{ID: 1, Username: "kenneth", Role: models.RoleMember}
	m := newTestMiddleware(t, map[int64]*models.User{1: user})
	cookie := loginAs(t, m, user)

	var seen *models.User
	handler := m.Authenticate(m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CurrentUser(r.Context())
	})))

	r := httptest.NewRequest(http.MethodGet, "/contents", nil)
	r.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rec.Code, http.StatusOK)
	}
	if seen == nil || seen.ID != 1 || seen.Username != "kenneth" {
		t.Errorf("CurrentUser = %+v, want the session user", seen)
	}
}

// Members are turned away from admin routes with a redirect, not 403.
func TestRequireAdminRedirectsMembers(t *testing.T) {
	member := &models.User{ID: 2, Username: "maria", Role: models.RoleMember}
	m := newTestMiddleware(t, map[int64]*models.User{2: member})
	cookie := loginAs(t, m, member)

	handler := m.Authenticate(m.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Admin handler ran for a member")
	})))

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/contents" {
		t.Errorf("Location = %q, want /contents", loc)
	}
}

func TestRequireAdminAllowsAdmins(t *testing.T) {
	admin := &models.User{ID: 1, Username: "kenneth", Role: models.RoleAdmin}
	m := newTestMiddleware(t, map[int64]*models.User{1: admin})
	cookie := loginAs(t, m, admin)

	ran := false
	handler := m.Authenticate(m.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
	})))

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	if !ran {
		t.Error("Admin handler did not run for an admin")
	}
}

// A session whose user was deleted resolves to anonymous and the stale
// session is dropped.
func TestAuthenticateDropsOrphanSession(t *testing.T) {
	user := &models.User{ID: 1, Username: "kenneth", Role: models.RoleMember}
	resolver := &fakeUsers{users: map[int64]*models.User{1: user}}
	m := NewSessionMiddleware(NewMemorySessionStore(), newTestCodec(t), resolver,
		SessionMiddlewareConfig{SessionTTL: time.Hour})
	cookie := loginAs(t, m, user)

	delete(resolver.users, 1)

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CurrentUser(r.Context()) != nil {
			t.Error("Deleted user still resolves to a session user")
		}
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)
	handler.ServeHTTP(httptest.NewRecorder(), r)
}

func TestDestroySessionClearsServerState(t *testing.T) {
	user := &models.User{ID: 1, Username: "kenneth", Role: models.RoleMember}
	m := newTestMiddleware(t, map[int64]*models.User{1: user})
	cookie := loginAs(t, m, user)

	// DestroySession reads the resolved session from the context, so
	// it runs behind Authenticate like the real logout route.
	r := httptest.NewRequest(http.MethodGet, "/logout", nil)
	r.AddCookie(cookie)
	rec := httptest.NewRecorder()
	m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.DestroySession(w, r)
	})).ServeHTTP(rec, r)

	// Replaying the old cookie must now resolve to anonymous.
	r2 := httptest.NewRequest(http.MethodGet, "/contents", nil)
	r2.AddCookie(cookie)
	rec2 := httptest.NewRecorder()
	m.Authenticate(m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Protected handler ran after logout")
	}))).ServeHTTP(rec2, r2)

	if rec2.Code != http.StatusSeeOther {
		t.Errorf("Status after logout = %d, want %d", rec2.Code, http.StatusSeeOther)
	}
}
