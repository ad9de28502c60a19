// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store is the document-repository layer between the HTTP handlers
// and the document store. It owns identifier and timestamp normalization,
// slug uniqueness at creation, the draft/published workflow, partial-update
// semantics, and query construction for filtered, paginated listings.
//
// The store itself is abstracted behind the Collection interface so the
// same Repository runs against MongoDB in production and against an
// in-memory collection in tests.
package store

import (
	"context"
	"errors"
)

// Sentinel errors returned by the repository. The HTTP layer maps each to
// a status code; anything else is treated as the store being unavailable.
var (
	ErrInvalidID    = errors.New("invalid identifier")
	ErrSlugConflict = errors.New("slug already exists")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("document store unavailable")
)

// Document is a schema-flexible record: a mapping of field name to value.
type Document map[string]any

// Search is a case-insensitive substring match OR-ed across fields.
type Search struct {
	Term   string
	Fields []string
}

// Predicate selects documents in a collection. Zero value matches all.
// All parts present are AND-ed together.
type Predicate struct {
	// ID matches the storage identifier, in its encoded hex form.
	ID string
	// Eq holds exact field equality requirements.
	Eq map[string]any
	// Contains requires an array field to contain the given value.
	Contains map[string]string
	// Free-text search across text fields.
	Search *Search
}

// Sort fields used by the listing operations.
const (
	SortCreatedAt   = "created_at"
	SortPublishedAt = "published_at"
)

// ListOptions carries cursor modifiers for a Find: sort order and the
// pagination window. Limit 0 means no limit.
type ListOptions struct {
	SortField string
	SortDesc  bool
	Skip      int64
	Limit     int64
}

// Collection is the contract the repository requires from the document
// store, per named collection. FindOne returns (nil, nil) when no document
// matches, so "absent" is distinguishable from a store failure.
type Collection interface {
	FindOne(ctx context.Context, p Predicate) (Document, error)
	Find(ctx context.Context, p Predicate, o ListOptions) ([]Document, error)
	Count(ctx context.Context, p Predicate) (int64, error)
	// Insert stores a new document and returns its encoded identifier.
	Insert(ctx context.Context, doc Document) (string, error)
	// UpdateOne applies a field-set update to the first match and reports
	// how many documents matched.
	UpdateOne(ctx context.Context, p Predicate, set Document) (int64, error)
	// DeleteOne removes the first match and reports how many were deleted.
	DeleteOne(ctx context.Context, p Predicate) (int64, error)
}
