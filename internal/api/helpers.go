// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/KennethRomeroLopez/proyecto-final/internal/logging"
	"github.com/KennethRomeroLopez/proyecto-final/internal/middleware"
	"github.com/KennethRomeroLopez/proyecto-final/internal/models"
	"github.com/KennethRomeroLopez/proyecto-final/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent
// log injection. Newlines and other control bytes could otherwise forge
// log entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a success or error envelope with proper headers.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	response.Metadata.Timestamp = time.Now()
	if response.Metadata.RequestID == "" {
		response.Metadata.RequestID = middleware.GetRequestID(r.Context())
	}

	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondData wraps data in a success envelope.
func respondData(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	respondJSON(w, r, status, &models.APIResponse{
		Status: "success",
		Data:   data,
	})
}

// respondError sends an error envelope.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", code).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, r, status, &models.APIResponse{
		Status: "error",
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondValidationError translates a validation failure into the
// VALIDATION_ERROR envelope.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondJSON(w, r, http.StatusBadRequest, &models.APIResponse{
		Status: "error",
		Error: &models.APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		},
	})
}

// respondInternalError hides store failures behind a generic message.
func respondInternalError(w http.ResponseWriter, r *http.Request, err error) {
	respondError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Ha ocurrido un error inesperado", err)
}

// redirect issues a 303 See Other. Form flows answer POSTs with a
// redirect so a refresh never replays the write.
func redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// redirectBack returns to the page the request came from, falling back
// to /contents when the Referer is absent.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	target := r.Referer()
	if target == "" {
		target = "/contents"
	}
	redirect(w, r, target)
}

// idFromURL parses the {id} route parameter. The second return is
// false when the parameter is not a positive integer; callers respond
// with VALIDATION_ERROR in that case.
func idFromURL(r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// parseOptionalInt turns a form value into an int pointer. Empty means
// "no change". A non-empty, non-numeric value is a field error.
func parseOptionalInt(value, field string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", field)
	}
	return &n, nil
}

// optionalString turns a form value into a string pointer, empty
// meaning "no change".
func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// imageUpload holds a decoded poster file.
type imageUpload struct {
	Data     []byte
	Filename string
	Mimetype string
}

// parseMultipartForm caps the request body before parsing. Returns
// false after writing the error response when the body is oversized or
// malformed.
func (h *Handler) parseMultipartForm(w http.ResponseWriter, r *http.Request) bool {
	maxBytes := h.config.Server.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, r, http.StatusRequestEntityTooLarge, "VALIDATION_ERROR",
				fmt.Sprintf("La imagen supera el tamaño máximo de %d bytes", maxBytes), nil)
			return false
		}
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Formulario inválido", err)
		return false
	}
	return true
}

// readImageUpload extracts the poster file from a parsed multipart
// form. A missing file returns (nil, nil): create handlers treat that
// as a field error, edit handlers as "no change".
func readImageUpload(r *http.Request, field string) (*imageUpload, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s upload: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s upload: %w", field, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &imageUpload{
		Data:     data,
		Filename: header.Filename,
		Mimetype: uploadMimetype(header),
	}, nil
}

// uploadMimetype reads the part's declared Content-Type.
func uploadMimetype(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// flashPayload surfaces the read-once flash cookie in page responses.
type flashPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// userPayload is the session user as exposed to clients.
type userPayload struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func toUserPayload(u *models.User) *userPayload {
	if u == nil {
		return nil
	}
	return &userPayload{ID: u.ID, Username: u.Username, Role: u.Role}
}
