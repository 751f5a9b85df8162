// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package models

import "time"

// APIResponse is the standardized envelope returned by every HTTP
// endpoint.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "DUPLICATE_USERNAME",
//	    "message": "Nombre de usuario en uso. Por favor, elige otro"
//	  },
//	  "metadata": {"timestamp": "2026-08-30T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response metadata for observability.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// APIError carries structured error details inside an APIResponse.
//
// Error codes used by the application:
//   - DUPLICATE_USERNAME: registration conflict, recoverable
//   - INVALID_CREDENTIALS: login failure, no user/password distinction
//   - VALIDATION_ERROR: malformed or missing request field
//   - NOT_FOUND: edit target does not exist
//   - AUTH_REQUIRED: protected route without a session
//   - INTERNAL_ERROR: unexpected store failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
