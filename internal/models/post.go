// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the document shapes stored in the content hub:
// posts and categories, plus the partial-update ("patch") forms used by
// the admin API. Documents live in a schema-flexible store, so each type
// knows how to flatten itself into a stored field map.
package models

import "time"

// Collection names in the document store.
const (
	CollectionPost     = "post"
	CollectionCategory = "category"
)

// Status represents the publishing state of a post.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Post is the client-supplied shape of a post document. Optional fields
// are pointers so absent and empty values are distinguishable.
type Post struct {
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Excerpt      *string    `json:"excerpt"`
	Content      string     `json:"content"`
	ImageURL     *string    `json:"image_url"`
	CategorySlug *string    `json:"category_slug"`
	Tags         []string   `json:"tags"`
	Status       Status     `json:"status"`
	Author       *string    `json:"author"`
	PublishedAt  *time.Time `json:"published_at"`
}

// Fields flattens the post into the field map stored at creation.
// Optional fields that were not supplied are stored as explicit nulls,
// which is also the shape the public API serves. Status defaults to draft.
func (p Post) Fields() map[string]any {
	status := p.Status
	if status == "" {
		status = StatusDraft
	}
	return map[string]any{
		"title":         p.Title,
		"slug":          p.Slug,
		"excerpt":       strOrNil(p.Excerpt),
		"content":       p.Content,
		"image_url":     strOrNil(p.ImageURL),
		"category_slug": strOrNil(p.CategorySlug),
		"tags":          tagsOrNil(p.Tags),
		"status":        string(status),
		"author":        strOrNil(p.Author),
		"published_at":  timeOrNil(p.PublishedAt),
	}
}

// PostPatch is a partial update for a post. Every field is presence-aware:
// only fields present in the request body end up in Fields(), so an update
// never touches fields the caller did not send.
type PostPatch struct {
	Title        *string    `json:"title"`
	Slug         *string    `json:"slug"`
	Excerpt      *string    `json:"excerpt"`
	Content      *string    `json:"content"`
	ImageURL     *string    `json:"image_url"`
	CategorySlug *string    `json:"category_slug"`
	Tags         []string   `json:"tags"`
	Status       *Status    `json:"status"`
	Author       *string    `json:"author"`
	PublishedAt  *time.Time `json:"published_at"`
}

// Fields returns only the fields explicitly present in the patch.
func (p PostPatch) Fields() map[string]any {
	f := make(map[string]any)
	if p.Title != nil {
		f["title"] = *p.Title
	}
	if p.Slug != nil {
		f["slug"] = *p.Slug
	}
	if p.Excerpt != nil {
		f["excerpt"] = *p.Excerpt
	}
	if p.Content != nil {
		f["content"] = *p.Content
	}
	if p.ImageURL != nil {
		f["image_url"] = *p.ImageURL
	}
	if p.CategorySlug != nil {
		f["category_slug"] = *p.CategorySlug
	}
	if p.Tags != nil {
		f["tags"] = p.Tags
	}
	if p.Status != nil {
		f["status"] = string(*p.Status)
	}
	if p.Author != nil {
		f["author"] = *p.Author
	}
	if p.PublishedAt != nil {
		f["published_at"] = p.PublishedAt.UTC()
	}
	return f
}

// strOrNil dereferences an optional string for storage (nil stays null).
func strOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// tagsOrNil keeps a nil tag list as an explicit null.
func tagsOrNil(tags []string) any {
	if tags == nil {
		return nil
	}
	return tags
}

// timeOrNil stores an optional timestamp in UTC (nil stays null).
func timeOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
