// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// FeedItem is the fixed projection of a published post served to external
// syndication consumers. It carries the serialized (string) form of the
// identifier and publish time.
type FeedItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Excerpt      *string  `json:"excerpt"`
	Content      string   `json:"content"`
	ImageURL     *string  `json:"image_url"`
	CategorySlug *string  `json:"category_slug"`
	Tags         []string `json:"tags"`
	Author       *string  `json:"author"`
	PublishedAt  *string  `json:"published_at"`
}
