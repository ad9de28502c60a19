// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "contenthub/internal/models"

// Default pagination window for public listings.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// searchFields are the text fields covered by the admin free-text search.
var searchFields = []string{"title", "excerpt", "content"}

// FilterOptions are the caller-supplied listing filters. Empty fields are
// left out of the resulting predicate.
type FilterOptions struct {
	Status       string
	CategorySlug string
	Tag          string
	// Search enables case-insensitive substring matching over title,
	// excerpt, and content. Admin listings only.
	Search string
}

// ListingFilter composes the filter predicate for a listing operation.
func ListingFilter(o FilterOptions) Predicate {
	p := Predicate{}
	if o.Status != "" {
		p.Eq = map[string]any{"status": o.Status}
	}
	if o.CategorySlug != "" {
		if p.Eq == nil {
			p.Eq = map[string]any{}
		}
		p.Eq["category_slug"] = o.CategorySlug
	}
	if o.Tag != "" {
		p.Contains = map[string]string{"tags": o.Tag}
	}
	if o.Search != "" {
		p.Search = &Search{Term: o.Search, Fields: searchFields}
	}
	return p
}

// PublishedFilter selects only published documents, optionally narrowed by
// category and tag. Used by every public listing and the syndication feed.
func PublishedFilter(categorySlug, tag string) Predicate {
	return ListingFilter(FilterOptions{
		Status:       string(models.StatusPublished),
		CategorySlug: categorySlug,
		Tag:          tag,
	})
}

// BySlug matches a document by its exact slug (case-sensitive).
func BySlug(slug string) Predicate {
	return Predicate{Eq: map[string]any{"slug": slug}}
}

// PublishedBySlug matches a published document by slug. Unpublished
// documents are indistinguishable from nonexistent ones through this
// predicate — the public visibility boundary.
func PublishedBySlug(slug string) Predicate {
	return Predicate{Eq: map[string]any{
		"slug":   slug,
		"status": string(models.StatusPublished),
	}}
}

// Paginate converts a 1-based page and a page size into a skip/limit
// window. Non-positive inputs fall back to the defaults. Page size has no
// upper clamp; callers are trusted, matching the original contract.
func Paginate(page, pageSize int64) (skip, limit int64) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return (page - 1) * pageSize, pageSize
}
