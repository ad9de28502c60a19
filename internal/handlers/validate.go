package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for post and category fields.
const (
	maxTitleLen   = 300
	maxSlugLen    = 300
	maxContentLen = 100_000
	maxExcerptLen = 1_000
	maxNameLen    = 200
)

// validatePost checks post inputs and returns the first error found. The
// slug is validated after auto-generation, so an empty slug here means the
// title produced nothing usable.
func validatePost(title, slug, content, excerpt string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if slug == "" {
		return "Slug is required."
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	if content == "" {
		return "Content is required."
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "Content is too long (max 100,000 characters)."
	}
	if utf8.RuneCountInString(excerpt) > maxExcerptLen {
		return "Excerpt is too long (max 1,000 characters)."
	}
	return ""
}

// validateCategory checks category inputs and returns the first error found.
func validateCategory(name, slug string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if slug == "" {
		return "Slug is required."
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	return ""
}
