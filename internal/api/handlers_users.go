// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package api

import (
	"errors"
	"net/http"

	"github.com/KennethRomeroLopez/proyecto-final/internal/database"
	"github.com/KennethRomeroLopez/proyecto-final/internal/logging"
	"github.com/KennethRomeroLopez/proyecto-final/internal/validation"
)

// editUserForm carries the /editar_usuarios fields. Both are optional;
// empty means "leave unchanged".
type editUserForm struct {
	Username string `validate:"omitempty,min=3,max=64"`
	Password string `validate:"omitempty,min=4,max=72"`
}

// GestionUsuarios lists every account for the management page.
func (h *Handler) GestionUsuarios(w http.ResponseWriter, r *http.Request) {
	users, err := h.db.ListUsers(r.Context())
	if err != nil {
		respondInternalError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, map[string]interface{}{"users": users})
}

// CrearUsuario lets an administrator create a member account directly
// from the management page. Same rules as self-registration.
func (h *Handler) CrearUsuario(w http.ResponseWriter, r *http.Request) {
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
		Msg("User created by admin")

	redirect(w, r, "/gestion_usuarios")
}

// EditarUsuariosPage serves the account being edited.
func (h *Handler) EditarUsuariosPage(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Identificador inválido", nil)
		return
	}

	user, err := h.db.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, "NOT_FOUND", "Usuario no encontrado", nil)
			return
		}
		respondInternalError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, map[string]interface{}{"user": toUserPayload(user)})
}

// EditarUsuarios renames an account and/or resets its password. Any
// credential change revokes the account's live sessions.
func (h *Handler) EditarUsuarios(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Identificador inválido", nil)
		return
	}
	if err := r.ParseForm(); err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Formulario inválido", err)
		return
	}

	form := editUserForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if verr := validation.ValidateStruct(&form); verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	if form.Username == "" && form.Password == "" {
		redirect(w, r, "/gestion_usuarios")
		return
	}

	if err := h.db.UpdateUser(r.Context(), id, form.Username, form.Password); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			respondError(w, r, http.StatusNotFound, "NOT_FOUND", "Usuario no encontrado", nil)
		case errors.Is(err, database.ErrDuplicateUsername):
			respondError(w, r, http.StatusConflict, "DUPLICATE_USERNAME",
				"Nombre de usuario en uso. Por favor, elige otro", nil)
		default:
			respondInternalError(w, r, err)
		}
		return
	}

	h.sessions.RevokeUserSessions(r.Context(), id)
	logging.Ctx(r.Context()).Info().Int64("user_id", id).Msg("User updated")
	redirect(w, r, "/gestion_usuarios")
}

// EliminarUsuarios removes an account with its marks and sessions;
// idempotent like the catalog deletes.
func (h *Handler) EliminarUsuarios(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Identificador inválido", nil)
		return
	}

	if err := h.db.DeleteUser(r.Context(), id); err != nil {
		respondInternalError(w, r, err)
		return
	}
	h.sessions.RevokeUserSessions(r.Context(), id)

	logging.Ctx(r.Context()).Info().Int64("user_id", id).Msg("User deleted")
	redirect(w, r, "/gestion_usuarios")
}
