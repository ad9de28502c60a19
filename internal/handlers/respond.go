// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"contenthub/internal/store"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Detail string `json:"detail"`
}

// listEnvelope is the response shape of every paginated listing.
type listEnvelope struct {
	Items    []store.Document `json:"items"`
	Page     int64            `json:"page"`
	PageSize int64            `json:"page_size"`
	Total    int64            `json:"total"`
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// respondError maps a repository error onto its HTTP status. Anything that
// is not one of the known sentinels means the document store failed, which
// is reported as service unavailable.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var detail string

	switch {
	case errors.Is(err, store.ErrInvalidID):
		status, detail = http.StatusBadRequest, "Invalid ID"
	case errors.Is(err, store.ErrSlugConflict):
		status, detail = http.StatusConflict, "Slug already exists"
	case errors.Is(err, store.ErrNotFound):
		status, detail = http.StatusNotFound, "Not found"
	case errors.Is(err, store.ErrUnavailable):
		status, detail = http.StatusServiceUnavailable, "Document store unavailable"
		slog.Error("store operation failed", "error", err, "path", r.URL.Path)
	default:
		status, detail = http.StatusServiceUnavailable, "Document store unavailable"
		slog.Error("store operation failed", "error", err, "path", r.URL.Path)
	}

	respondJSON(w, r, status, errorBody{Detail: detail})
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// response and returns false; the handler should return immediately.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondJSON(w, r, http.StatusBadRequest, errorBody{Detail: "Invalid request body"})
		return false
	}
	return true
}
