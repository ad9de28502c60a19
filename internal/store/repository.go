// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"time"
)

// Repository provides create/read/update/delete over a single document
// collection. Posts and categories use it identically; all results are
// routed through Serialize before being returned.
type Repository struct {
	col Collection
	now func() time.Time
}

// NewRepository creates a repository over the given collection.
func NewRepository(col Collection) *Repository {
	return &Repository{col: col, now: time.Now}
}

// Create validates slug uniqueness, applies the publish workflow, stamps
// the system timestamps, persists, and returns the re-read document in
// serialized form. Fails with ErrSlugConflict when the slug is taken.
func (r *Repository) Create(ctx context.Context, fields Document) (Document, error) {
	slug, _ := fields["slug"].(string)
	if err := r.ensureUniqueSlug(ctx, slug); err != nil {
		return nil, err
	}

	now := r.now().UTC()
	effective, _ := publishMerge(nil, fields, now)
	effective["created_at"] = now
	effective["updated_at"] = now

	id, err := r.col.Insert(ctx, effective)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}

	doc, err := r.col.FindOne(ctx, Predicate{ID: id})
	if err != nil {
		return nil, fmt.Errorf("read back created document: %w", err)
	}
	return Serialize(doc), nil
}

// List returns the serialized documents matching the predicate under the
// given sort and pagination window.
func (r *Repository) List(ctx context.Context, p Predicate, o ListOptions) ([]Document, error) {
	docs, err := r.col.Find(ctx, p, o)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	items := make([]Document, 0, len(docs))
	for _, d := range docs {
		items = append(items, Serialize(d))
	}
	return items, nil
}

// ListWithTotal is List plus a true total count under the same predicate,
// computed independent of the pagination window. Public listings use it to
// build their response envelope.
func (r *Repository) ListWithTotal(ctx context.Context, p Predicate, o ListOptions) ([]Document, int64, error) {
	items, err := r.List(ctx, p, o)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.col.Count(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}
	return items, total, nil
}

// GetByID fetches a single document by its encoded identifier. Fails with
// ErrInvalidID on a malformed identifier and ErrNotFound when absent.
func (r *Repository) GetByID(ctx context.Context, id string) (Document, error) {
	if !ValidID(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	doc, err := r.col.FindOne(ctx, Predicate{ID: id})
	if err != nil {
		return nil, fmt.Errorf("find by id: %w", err)
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return Serialize(doc), nil
}

// GetBySlugPublished fetches a published document by slug. Drafts are
// reported as ErrNotFound — public callers cannot tell an unpublished
// document from a nonexistent one.
func (r *Repository) GetBySlugPublished(ctx context.Context, slug string) (Document, error) {
	doc, err := r.col.FindOne(ctx, PublishedBySlug(slug))
	if err != nil {
		return nil, fmt.Errorf("find by slug: %w", err)
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return Serialize(doc), nil
}

// Update applies a partial update: only fields present in patch are
// touched. An empty patch is a no-op reported as updated=false, distinct
// from ErrNotFound. Otherwise the publish workflow runs against the merged
// view of the existing document, updated_at is stamped, and the re-read
// document is returned serialized.
func (r *Repository) Update(ctx context.Context, id string, patch Document) (Document, bool, error) {
	if !ValidID(id) {
		return nil, false, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if len(patch) == 0 {
		return nil, false, nil
	}

	existing, err := r.col.FindOne(ctx, Predicate{ID: id})
	if err != nil {
		return nil, false, fmt.Errorf("find for update: %w", err)
	}
	if existing == nil {
		return nil, false, ErrNotFound
	}

	now := r.now().UTC()
	_, changes := publishMerge(existing, patch, now)
	changes["updated_at"] = now

	matched, err := r.col.UpdateOne(ctx, Predicate{ID: id}, changes)
	if err != nil {
		return nil, false, fmt.Errorf("update document: %w", err)
	}
	if matched == 0 {
		// Deleted between the read and the write.
		return nil, false, ErrNotFound
	}

	doc, err := r.col.FindOne(ctx, Predicate{ID: id})
	if err != nil {
		return nil, false, fmt.Errorf("read back updated document: %w", err)
	}
	return Serialize(doc), true, nil
}

// Delete removes a document by its encoded identifier. Deleting a
// nonexistent identifier is not an error: the bool reports whether
// exactly one document was removed.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	if !ValidID(id) {
		return false, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	deleted, err := r.col.DeleteOne(ctx, Predicate{ID: id})
	if err != nil {
		return false, fmt.Errorf("delete document: %w", err)
	}
	return deleted == 1, nil
}

// ensureUniqueSlug checks no document in the collection already carries
// the slug. Checked at creation only; a concurrent create can still race
// this check, as the store enforces no uniqueness constraint of its own.
func (r *Repository) ensureUniqueSlug(ctx context.Context, slug string) error {
	existing, err := r.col.FindOne(ctx, BySlug(slug))
	if err != nil {
		return fmt.Errorf("slug lookup: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %q", ErrSlugConflict, slug)
	}
	return nil
}
