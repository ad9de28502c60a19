// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the content hub API.
// Handlers are grouped by concern (admin, public, feed) and receive their
// dependencies through the handler struct.
package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"contenthub/internal/models"
	"contenthub/internal/slug"
	"contenthub/internal/store"
)

// Admin groups the admin API handlers: full CRUD over posts and
// categories, drafts included.
type Admin struct {
	posts      *store.Repository
	categories *store.Repository
}

// NewAdmin creates a new Admin handler group over the given repositories.
func NewAdmin(posts, categories *store.Repository) *Admin {
	return &Admin{posts: posts, categories: categories}
}

// --- Categories CRUD ---

// CategoryCreate handles POST /api/admin/categories.
func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if !decodeJSON(w, r, &c) {
		return
	}
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Name)
	}
	if errMsg := validateCategory(c.Name, c.Slug); errMsg != "" {
		respondJSON(w, r, http.StatusBadRequest, errorBody{Detail: errMsg})
		return
	}

	created, err := a.categories.Create(r.Context(), c.Fields())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

// CategoriesList handles GET /api/admin/categories. Returns every
// category, newest first.
func (a *Admin) CategoriesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.categories.List(r.Context(), store.Predicate{}, store.ListOptions{
		SortField: store.SortCreatedAt,
		SortDesc:  true,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, items)
}

// CategoryUpdate handles PATCH /api/admin/categories/{id}. Only fields
// present in the body are touched; an empty body is a no-op.
func (a *Admin) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	var patch models.CategoryPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	doc, updated, err := a.categories.Update(r.Context(), chi.URLParam(r, "id"), patch.Fields())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !updated {
		respondJSON(w, r, http.StatusOK, map[string]bool{"updated": false})
		return
	}
	respondJSON(w, r, http.StatusOK, doc)
}

// CategoryDelete handles DELETE /api/admin/categories/{id}. Deleting a
// nonexistent category is not an error; the response reports what happened.
func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := a.categories.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]bool{"deleted": deleted})
}

// --- Posts CRUD ---

// PostCreate handles POST /api/admin/posts.
func (a *Admin) PostCreate(w http.ResponseWriter, r *http.Request) {
	var p models.Post
	if !decodeJSON(w, r, &p) {
		return
	}
	if p.Slug == "" {
		p.Slug = slug.Generate(p.Title)
	}
	excerpt := ""
	if p.Excerpt != nil {
		excerpt = *p.Excerpt
	}
	if errMsg := validatePost(p.Title, p.Slug, p.Content, excerpt); errMsg != "" {
		respondJSON(w, r, http.StatusBadRequest, errorBody{Detail: errMsg})
		return
	}

	created, err := a.posts.Create(r.Context(), p.Fields())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

// PostsList handles GET /api/admin/posts. Drafts are visible here. Supports
// status filtering, free-text search over title, excerpt and content, and
// pagination; results come newest first by creation time.
func (a *Admin) PostsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.ListingFilter(store.FilterOptions{
		Status: q.Get("status"),
		Search: q.Get("q"),
	})

	page, pageSize := queryPagination(q)
	skip, limit := store.Paginate(page, pageSize)

	items, total, err := a.posts.ListWithTotal(r.Context(), filter, store.ListOptions{
		SortField: store.SortCreatedAt,
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

// PostGet handles GET /api/admin/posts/{id}.
func (a *Admin) PostGet(w http.ResponseWriter, r *http.Request) {
	doc, err := a.posts.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, doc)
}

// PostUpdate handles PATCH /api/admin/posts/{id}. Only fields present in
// the body are touched; an empty body is a no-op. Publishing a post here
// stamps its publish timestamp if it has none.
func (a *Admin) PostUpdate(w http.ResponseWriter, r *http.Request) {
	var patch models.PostPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	doc, updated, err := a.posts.Update(r.Context(), chi.URLParam(r, "id"), patch.Fields())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !updated {
		respondJSON(w, r, http.StatusOK, map[string]bool{"updated": false})
		return
	}
	respondJSON(w, r, http.StatusOK, doc)
}

// PostDelete handles DELETE /api/admin/posts/{id}.
func (a *Admin) PostDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := a.posts.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]bool{"deleted": deleted})
}

// queryPagination reads and normalizes the page and page_size parameters,
// so the response envelope always reports the window actually served.
func queryPagination(q url.Values) (page, pageSize int64) {
	page = queryInt64(q.Get("page"), store.DefaultPage)
	pageSize = queryInt64(q.Get("page_size"), store.DefaultPageSize)
	if page < 1 {
		page = store.DefaultPage
	}
	if pageSize < 1 {
		pageSize = store.DefaultPageSize
	}
	return page, pageSize
}

// queryInt64 parses a numeric query parameter, falling back on absent or
// unparseable values.
func queryInt64(s string, fallback int64) int64 {
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
