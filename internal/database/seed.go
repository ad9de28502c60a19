package database

import (
	"context"
	"fmt"
	"log/slog"

	"contenthub/internal/models"
	"contenthub/internal/store"
)

// Seed populates the database with initial development data: a sample
// category and a published welcome post. It is idempotent — if any post
// already exists it does nothing.
func Seed(ctx context.Context, posts, categories *store.Repository) error {
	existing, err := posts.List(ctx, store.Predicate{}, store.ListOptions{Limit: 1})
	if err != nil {
		return fmt.Errorf("seed check posts: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	desc := "Product and engineering updates"
	if _, err := categories.Create(ctx, models.Category{
		Name:        "News",
		Slug:        "news",
		Description: &desc,
	}.Fields()); err != nil {
		return fmt.Errorf("seed category: %w", err)
	}

	excerpt := "The content hub is up and running."
	category := "news"
	author := "admin"
	if _, err := posts.Create(ctx, models.Post{
		Title:        "Welcome",
		Slug:         "welcome",
		Excerpt:      &excerpt,
		Content:      "# Welcome\n\nThis is the first post. Replace it with your own content.",
		CategorySlug: &category,
		Tags:         []string{"announcement"},
		Status:       models.StatusPublished,
		Author:       &author,
	}.Fields()); err != nil {
		return fmt.Errorf("seed post: %w", err)
	}

	slog.Info("database seeded with sample content", "post", "welcome", "category", "news")
	return nil
}
