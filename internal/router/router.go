// Package router sets up all HTTP routes and middleware chains for the
// content hub API. It organizes routes into admin and public groups with
// appropriate middleware stacks.
package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"contenthub/internal/handlers"
	"contenthub/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. The limiter throttles the public surface
// only; the admin API sits behind the deployment's own access controls.
func New(health *handlers.Health, admin *handlers.Admin, public *handlers.Public, feed *handlers.Feed, limiter middleware.Limiter, origins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", health.Root)
	r.Get("/health", health.Check)

	r.Route("/api", func(r chi.Router) {
		// Admin API — full CRUD, drafts visible.
		r.Route("/admin", func(r chi.Router) {
			r.Route("/categories", func(r chi.Router) {
				r.Get("/", admin.CategoriesList)
				r.Post("/", admin.CategoryCreate)
				r.Patch("/{id}", admin.CategoryUpdate)
				r.Delete("/{id}", admin.CategoryDelete)
			})

			r.Route("/posts", func(r chi.Router) {
				r.Get("/", admin.PostsList)
				r.Post("/", admin.PostCreate)
				r.Get("/{id}", admin.PostGet)
				r.Patch("/{id}", admin.PostUpdate)
				r.Delete("/{id}", admin.PostDelete)
			})
		})

		// Public API — read-only, published content, rate-limited.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(limiter))

			r.Get("/posts", public.PostsList)
			r.Get("/posts/{slug}", public.PostBySlug)
			r.Get("/categories", public.CategoriesList)
			r.Get("/wp/feed", feed.Posts)
		})
	})

	return r
}
