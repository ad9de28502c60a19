// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category groups posts under a human-readable slug. Posts reference a
// category by slug value only — deleting a category leaves any referencing
// posts untouched.
type Category struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

// Fields flattens the category into the field map stored at creation.
func (c Category) Fields() map[string]any {
	return map[string]any{
		"name":        c.Name,
		"slug":        c.Slug,
		"description": strOrNil(c.Description),
	}
}

// CategoryPatch is a presence-aware partial update for a category.
type CategoryPatch struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

// Fields returns only the fields explicitly present in the patch.
func (c CategoryPatch) Fields() map[string]any {
	f := make(map[string]any)
	if c.Name != nil {
		f["name"] = *c.Name
	}
	if c.Slug != nil {
		f["slug"] = *c.Slug
	}
	if c.Description != nil {
		f["description"] = *c.Description
	}
	return f
}
