// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// MongoDB connection
	DatabaseURL  string
	DatabaseName string

	// Redis, used by the public rate limiter when configured
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// CORS allowed origins, comma-separated ("*" allows all)
	CORSOrigins string

	// Rate limiting for the public API
	RateLimit  int
	RateWindow time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DatabaseURL:  envOrDefault("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName: envOrDefault("DATABASE_NAME", "contenthub"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     envOrDefault("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		CORSOrigins: envOrDefault("CORS_ORIGINS", "*"),
	}

	limit, err := envOrDefaultInt("RATE_LIMIT", 60)
	if err != nil {
		return nil, err
	}
	cfg.RateLimit = limit

	window, err := envOrDefaultInt("RATE_WINDOW", 60)
	if err != nil {
		return nil, err
	}
	cfg.RateWindow = time.Duration(window) * time.Second

	if cfg.Env == "production" {
		if os.Getenv("DATABASE_URL") == "" {
			return nil, fmt.Errorf("DATABASE_URL must be set in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// RedisAddr returns the Redis address, or "" when Redis is not configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// Origins returns the allowed CORS origins as a list.
func (c *Config) Origins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envOrDefaultInt is envOrDefault for positive integer settings.
func envOrDefaultInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}
