// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/KennethRomeroLopez/proyecto-final/internal/logging"
	"github.com/KennethRomeroLopez/proyecto-final/internal/models"
)

type sessionContextKey string

const (
	currentUserKey    sessionContextKey = "current_user"
	currentSessionKey sessionContextKey = "current_session"
)

// UserResolver looks a user up by ID. Implemented by *database.DB;
// declared here so the gate does not depend on the storage package.
type UserResolver interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// SessionMiddlewareConfig tunes the session gate.
type SessionMiddlewareConfig struct {
	// SessionTTL is applied when issuing and when sliding expiry.
	SessionTTL time.Duration

	// SlidingSession extends expiry on each authenticated request.
	SlidingSession bool

	// LoginPath is where anonymous requests to protected routes are
	// sent. Default /login.
	LoginPath string

	// HomePath is where authenticated non-admins are sent from
	// admin-only routes. Default /contents.
	HomePath string
}

// SessionMiddleware resolves the signed session cookie to a User
// record on every request and exposes the RequireAuth / RequireAdmin
// gates for protected routes.
type SessionMiddleware struct {
	store  SessionStore
	codec  *CookieCodec
	users  UserResolver
	config SessionMiddlewareConfig
}

// NewSessionMiddleware builds the session gate.
func NewSessionMiddleware(store SessionStore, codec *CookieCodec, users UserResolver, config SessionMiddlewareConfig) *SessionMiddleware {
	if config.SessionTTL <= 0 {
		config.SessionTTL = 24 * time.Hour
	}
	if config.LoginPath == "" {
		config.LoginPath = "/login"
	}
	if config.HomePath == "" {
		config.HomePath = "/contents"
	}
	return &SessionMiddleware{
		store:  store,
		codec:  codec,
		users:  users,
		config: config,
	}
}

// Authenticate resolves the session cookie, failing open to Anonymous:
// a missing cookie, bad signature, unknown/expired session, or deleted
// user all leave the request unauthenticated and let it continue.
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := m.codec.ReadSessionID(r)
		if sessionID == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.store.Get(r.Context(), sessionID)
		if err != nil {
			if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired) {
				logging.Ctx(r.Context()).Error().Err(err).Msg("Session lookup failed")
			}
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.users.GetUserByID(r.Context(), session.UserID)
		if err != nil {
			// Account deleted since login: drop the stale session.
			if delErr := m.store.Delete(r.Context(), sessionID); delErr != nil {
				logging.Ctx(r.Context()).Error().Err(delErr).Msg("Failed to delete stale session")
			}
			next.ServeHTTP(w, r)
			return
		}

		if m.config.SlidingSession {
			newExpiry := time.Now().Add(m.config.SessionTTL)
			if err := m.store.Touch(r.Context(), sessionID, newExpiry); err != nil {
				logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to touch session")
			}
		}

		ctx := context.WithValue(r.Context(), currentUserKey, user)
		ctx = context.WithValue(ctx, currentSessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth redirects anonymous requests to the login page with a
// flash notice. Mirrors the original login_required behavior.
func (m *SessionMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CurrentUser(r.Context()) == nil {
			SetFlash(w, "error", "Inicia sesión para acceder a esta página")
			http.Redirect(w, r, m.config.LoginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin keeps the original user-facing behavior for non-admins:
// a flash notice and a redirect to the contents page, not an HTTP 403.
func (m *SessionMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !CurrentUser(r.Context()).IsAdmin() {
			SetFlash(w, "error", "Solo los administradores pueden acceder a esta página")
			http.Redirect(w, r, m.config.HomePath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// IssueSession creates a server-side session for user and sets the
// signed cookie. Called after successful login or registration.
func (m *SessionMiddleware) IssueSession(ctx context.Context, w http.ResponseWriter, user *models.User) (*Session, error) {
	session := NewSession(user, m.config.SessionTTL)
	if err := m.store.Create(ctx, session); err != nil {
		return nil, err
	}
	if err := m.codec.SetSessionCookie(w, session.ID, int(m.config.SessionTTL.Seconds())); err != nil {
		// The cookie never reached the client; drop the orphan session.
		_ = m.store.Delete(ctx, session.ID)
		return nil, err
	}
	return session, nil
}

// DestroySession deletes the current session and expires the cookie.
func (m *SessionMiddleware) DestroySession(w http.ResponseWriter, r *http.Request) {
	if session := CurrentSession(r.Context()); session != nil {
		if err := m.store.Delete(r.Context(), session.ID); err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Str("session_id", session.ID).Msg("Failed to delete session")
		}
	}
	m.codec.ClearSessionCookie(w)
}

// RevokeUserSessions drops every session belonging to userID. Used
// when an account is deleted or its credentials change.
func (m *SessionMiddleware) RevokeUserSessions(ctx context.Context, userID int64) {
	if _, err := m.store.DeleteByUserID(ctx, userID); err != nil {
		logging.Ctx(ctx).Error().Err(err).Int64("user_id", userID).Msg("Failed to revoke user sessions")
	}
}

// StartCleanup purges expired sessions every interval until ctx ends.
func (m *SessionMiddleware) StartCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				count, err := m.store.CleanupExpired(ctx)
				if err != nil {
					logging.Error().Err(err).Msg("Session cleanup failed")
					continue
				}
				if count > 0 {
					logging.Debug().Int("count", count).Msg("Purged expired sessions")
				}
			}
		}
	}()
}

// CurrentUser returns the authenticated user, or nil when Anonymous.
func CurrentUser(ctx context.Context) *models.User {
	if user, ok := ctx.Value(currentUserKey).(*models.User); ok {
		return user
	}
	return nil
}

// CurrentSession returns the resolved session, or nil when Anonymous.
func CurrentSession(ctx context.Context) *Session {
	if session, ok := ctx.Value(currentSessionKey).(*Session); ok {
		return session
	}
	return nil
}
