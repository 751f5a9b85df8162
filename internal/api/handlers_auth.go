// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package api

import (
	"errors"
	"net/http"

	"github.com/KennethRomeroLopez/proyecto-final/internal/auth"
	"github.com/KennethRomeroLopez/proyecto-final/internal/database"
	"github.com/KennethRomeroLopez/proyecto-final/internal/logging"
	"github.com/KennethRomeroLopez/proyecto-final/internal/validation"
)

// registerForm carries the /register POST fields.
// Bcrypt truncates at 72 bytes, hence the max.
type registerForm struct {
	Username string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=4,max=72"`
}

// loginForm carries the /login POST fields. Login never reveals which
// field was wrong, so no length rules beyond required.
type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// RegisterPage serves the registration page payload.
func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.pagePayload(w, r, "register")
}

// Register creates an account. Duplicate usernames answer 409 so the
// form can be re-shown with the taken name intact.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Formulario inválido", err)
		return
	}

	form := registerForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if verr := validation.ValidateStruct(&form); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	user, err := h.db.CreateUser(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateUsername) {
			respondError(w, r, http.StatusConflict, "DUPLICATE_USERNAME",
				"Nombre de usuario en uso. Por favor, elige otro", nil)
			return
		}
		respondInternalError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int64("user_id", user.ID).
		Str("username", sanitizeLogValue(user.Username)).
		Str("role", user.Role).
		Msg("User registered")

	auth.SetFlash(w, "success", "Cuenta creada. Ya puedes iniciar sesión")
	redirect(w, r, "/login")
}

// LoginPage serves the login page payload, including any flash left by
// a redirect (auth-required notice, fresh registration).
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.pagePayload(w, r, "login")
}

// Login authenticates and issues a session. Failures are uniform: the
// response never distinguishes unknown user from wrong password.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Formulario inválido", err)
		return
	}

	form := loginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if verr := validation.ValidateStruct(&form); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	user, err := h.db.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, database.ErrInvalidCredentials) {
			respondError(w, r, http.StatusUnauthorized, "INVALID_CREDENTIALS",
				"Usuario o contraseña incorrectos", nil)
			return
		}
		respondInternalError(w, r, err)
		return
	}

	if _, err := h.sessions.IssueSession(r.Context(), w, user); err != nil {
		respondInternalError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int64("user_id", user.ID).
		Str("username", sanitizeLogValue(user.Username)).
		Msg("User logged in")

	redirect(w, r, "/contents")
}

// Logout destroys the session and clears the cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.DestroySession(w, r)
	auth.SetFlash(w, "success", "Sesión cerrada")
	redirect(w, r, "/")
}
