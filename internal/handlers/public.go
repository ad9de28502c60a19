// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"contenthub/internal/markdown"
	"contenthub/internal/store"
)

// Public groups the read-only public API handlers. Only published posts
// are visible here; a draft is indistinguishable from a missing post.
type Public struct {
	posts      *store.Repository
	categories *store.Repository
}

// NewPublic creates a new Public handler group over the given repositories.
func NewPublic(posts, categories *store.Repository) *Public {
	return &Public{posts: posts, categories: categories}
}

// PostsList handles GET /api/posts: published posts, newest first by
// publish time, optionally narrowed by category and tag, paginated.
func (p *Public) PostsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.PublishedFilter(q.Get("category"), q.Get("tag"))

	page, pageSize := queryPagination(q)
	skip, limit := store.Paginate(page, pageSize)

	items, total, err := p.posts.ListWithTotal(r.Context(), filter, store.ListOptions{
		SortField: store.SortPublishedAt,
		SortDesc:  true,
		Skip:      skip,
		Limit:     limit,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, listEnvelope{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}

// PostBySlug handles GET /api/posts/{slug}. The response carries the
// stored Markdown as content plus its rendered form as content_html.
func (p *Public) PostBySlug(w http.ResponseWriter, r *http.Request) {
	doc, err := p.posts.GetBySlugPublished(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	if content, ok := doc["content"].(string); ok {
		rendered, err := markdown.ToHTML(content)
		if err != nil {
			respondError(w, r, err)
			return
		}
		doc["content_html"] = rendered
	}

	respondJSON(w, r, http.StatusOK, doc)
}

// CategoriesList handles GET /api/categories: every category, newest first.
func (p *Public) CategoriesList(w http.ResponseWriter, r *http.Request) {
	items, err := p.categories.List(r.Context(), store.Predicate{}, store.ListOptions{
		SortField: store.SortCreatedAt,
		SortDesc:  true,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, items)
}
