// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package api

import (
	"net/http"

	"github.com/KennethRomeroLopez/proyecto-final/internal/auth"
)

// pagePayload answers a plain page route: which page it is, who is
// logged in, and any pending flash notice.
func (h *Handler) pagePayload(w http.ResponseWriter, r *http.Request, page string) {
	data := map[string]interface{}{
		"page": page,
		"user": toUserPayload(auth.CurrentUser(r.Context())),
	}
	if flash := auth.PopFlash(w, r); flash != nil {
		data["flash"] = flashPayload{Kind: flash.Kind, Message: flash.Message}
	}
	respondData(w, r, http.StatusOK, data)
}

// Home is the public landing page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.pagePayload(w, r, "home")
}

// Contents is the post-login landing page.
func (h *Handler) Contents(w http.ResponseWriter, r *http.Request) {
	h.pagePayload(w, r, "contents")
}

// Admin is the management landing page. Non-admins never reach it:
// the router gates it behind RequireAdmin, which redirects them to
// /contents with a flash notice.
func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	h.pagePayload(w, r, "admin")
}
