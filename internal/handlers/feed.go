// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"contenthub/internal/models"
	"contenthub/internal/store"
)

// Default number of posts served by the syndication feed.
const defaultFeedLimit = 50

// Feed serves the syndication feed consumed by external site builders.
type Feed struct {
	posts *store.Repository
}

// NewFeed creates a new Feed handler over the post repository.
func NewFeed(posts *store.Repository) *Feed {
	return &Feed{posts: posts}
}

// Posts handles GET /api/wp/feed: the newest published posts projected
// down to the fields syndication consumers need.
func (f *Feed) Posts(w http.ResponseWriter, r *http.Request) {
	limit := queryInt64(r.URL.Query().Get("limit"), defaultFeedLimit)
	if limit < 1 {
		limit = defaultFeedLimit
	}

	docs, err := f.posts.List(r.Context(), store.PublishedFilter("", ""), store.ListOptions{
		SortField: store.SortPublishedAt,
		SortDesc:  true,
		Limit:     limit,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	items := make([]models.FeedItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, feedItem(doc))
	}
	respondJSON(w, r, http.StatusOK, items)
}

// feedItem projects a serialized post document onto the feed shape.
func feedItem(doc store.Document) models.FeedItem {
	return models.FeedItem{
		ID:           docString(doc, "id"),
		Title:        docString(doc, "title"),
		Slug:         docString(doc, "slug"),
		Content:      docString(doc, "content"),
		Excerpt:      docStringPtr(doc, "excerpt"),
		ImageURL:     docStringPtr(doc, "image_url"),
		CategorySlug: docStringPtr(doc, "category_slug"),
		Author:       docStringPtr(doc, "author"),
		PublishedAt:  docStringPtr(doc, "published_at"),
		Tags:         docTags(doc, "tags"),
	}
}

func docString(doc store.Document, key string) string {
	s, _ := doc[key].(string)
	return s
}

func docStringPtr(doc store.Document, key string) *string {
	if s, ok := doc[key].(string); ok {
		return &s
	}
	return nil
}

// docTags reads a tag list, tolerating both []string and the []any form
// BSON decoding produces.
func docTags(doc store.Document, key string) []string {
	switch tags := doc[key].(type) {
	case []string:
		return tags
	case []any:
		out := make([]string, 0, len(tags))
		for _, t := range tags {
			if s, ok := t.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
