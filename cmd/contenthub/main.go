// Package main is the entry point for the content hub server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"contenthub/internal/config"
	"contenthub/internal/database"
	"contenthub/internal/handlers"
	"contenthub/internal/middleware"
	"contenthub/internal/models"
	"contenthub/internal/router"
	"contenthub/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to MongoDB.
	db, err := database.Connect(cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())

	// Repositories over the post and category collections.
	posts := store.NewRepository(store.NewMongoCollection(db.Collection(models.CollectionPost)))
	categories := store.NewRepository(store.NewMongoCollection(db.Collection(models.CollectionCategory)))

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(context.Background(), posts, categories); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Public rate limiter. With Redis configured the budget is shared
	// across replicas; otherwise each process counts on its own.
	var limiter middleware.Limiter
	if addr := cfg.RedisAddr(); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.RedisPassword,
		})
		defer rdb.Close()
		limiter = middleware.NewRedisWindow(rdb, cfg.RateLimit, cfg.RateWindow)
		slog.Info("rate limiter backed by redis", "addr", addr)
	} else {
		sw := middleware.NewSlidingWindow(cfg.RateLimit, cfg.RateWindow)
		defer sw.Stop()
		limiter = sw
		slog.Info("rate limiter running in-process")
	}

	// Create handler groups with their dependencies.
	healthHandlers := handlers.NewHealth(db)
	adminHandlers := handlers.NewAdmin(posts, categories)
	publicHandlers := handlers.NewPublic(posts, categories)
	feedHandlers := handlers.NewFeed(posts)

	// Set up the Chi router with all middleware and routes.
	r := router.New(healthHandlers, adminHandlers, publicHandlers, feedHandlers, limiter, cfg.Origins())

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
