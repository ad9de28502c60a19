// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
)

// Storage is the slice of the database handle the health check needs.
// A nil Storage means the service runs on in-memory collections.
type Storage interface {
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}

// Health reports service and document-store status.
type Health struct {
	db Storage
}

// NewHealth creates a Health handler. db may be nil when no database is
// configured.
func NewHealth(db Storage) *Health {
	return &Health{db: db}
}

// Root handles GET /: a plain identification banner.
func (h *Health) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{
		"message": "Content hub API is running",
	})
}

// Check handles GET /health. It verifies the document store is reachable
// and reports the collections present, so a failing dependency shows up
// before the first real request does.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respondJSON(w, r, http.StatusOK, map[string]any{
			"status":  "ok",
			"storage": "memory",
		})
		return
	}

	if err := h.db.Ping(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}
	collections, err := h.db.CollectionNames(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"status":      "ok",
		"storage":     "mongodb",
		"collections": collections,
	})
}
