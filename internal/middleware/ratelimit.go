// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether a request identified by key may proceed.
// Implementations count against a fixed budget per time window.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// limiterEntry tracks request timestamps for a single client.
type limiterEntry struct {
	mu         sync.Mutex
	timestamps []time.Time
}

// SlidingWindow is an in-process Limiter using a per-key sliding window.
// It is the default backend when no Redis is configured; counts are local
// to the process.
type SlidingWindow struct {
	mu      sync.RWMutex
	clients map[string]*limiterEntry
	limit   int           // max requests per window
	window  time.Duration // sliding window duration
	stopCh  chan struct{}
}

// NewSlidingWindow creates a limiter that allows limit requests per window.
// It starts a background goroutine to clean up expired entries.
func NewSlidingWindow(limit int, window time.Duration) *SlidingWindow {
	sw := &SlidingWindow{
		clients: make(map[string]*limiterEntry),
		limit:   limit,
		window:  window,
		stopCh:  make(chan struct{}),
	}

	// Periodic cleanup of expired entries every 5 minutes.
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sw.cleanup()
			case <-sw.stopCh:
				return
			}
		}
	}()

	return sw
}

// Stop terminates the background cleanup goroutine.
func (sw *SlidingWindow) Stop() {
	close(sw.stopCh)
}

// Allow checks whether the given key is within the rate limit.
func (sw *SlidingWindow) Allow(_ context.Context, key string) bool {
	sw.mu.RLock()
	entry, exists := sw.clients[key]
	sw.mu.RUnlock()

	if !exists {
		sw.mu.Lock()
		// Double-check after acquiring write lock.
		entry, exists = sw.clients[key]
		if !exists {
			entry = &limiterEntry{}
			sw.clients[key] = entry
		}
		sw.mu.Unlock()
	}

	now := time.Now()
	cutoff := now.Add(-sw.window)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	// Remove expired timestamps.
	valid := entry.timestamps[:0]
	for _, ts := range entry.timestamps {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}
	entry.timestamps = valid

	if len(entry.timestamps) >= sw.limit {
		return false
	}

	entry.timestamps = append(entry.timestamps, now)
	return true
}

// cleanup removes entries with no recent activity.
func (sw *SlidingWindow) cleanup() {
	cutoff := time.Now().Add(-sw.window)

	sw.mu.Lock()
	defer sw.mu.Unlock()

	for key, entry := range sw.clients {
		entry.mu.Lock()
		hasRecent := false
		for _, ts := range entry.timestamps {
			if ts.After(cutoff) {
				hasRecent = true
				break
			}
		}
		entry.mu.Unlock()

		if !hasRecent {
			delete(sw.clients, key)
		}
	}
}

// RedisWindow is a Limiter backed by Redis, so the budget is shared across
// replicas. It counts per fixed window using INCR with an expiry. Redis
// failures fail open: an unreachable limiter must not take the API down.
type RedisWindow struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

// NewRedisWindow creates a Redis-backed limiter allowing limit requests
// per window.
func NewRedisWindow(rdb *redis.Client, limit int, window time.Duration) *RedisWindow {
	return &RedisWindow{rdb: rdb, limit: limit, window: window}
}

// Allow checks whether the given key is within the rate limit.
func (rw *RedisWindow) Allow(ctx context.Context, key string) bool {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := rw.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		slog.Warn("rate limiter unavailable, allowing request", "error", err)
		return true
	}
	if count == 1 {
		// First hit in this window sets the expiry.
		if err := rw.rdb.Expire(ctx, redisKey, rw.window).Err(); err != nil {
			slog.Warn("rate limiter expire failed", "error", err)
		}
	}
	return count <= int64(rw.limit)
}

// RateLimit returns an HTTP middleware that rate-limits by client IP.
func RateLimit(l Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(r.Context(), clientIP(r)) {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the client's IP address, checking X-Forwarded-For
// and X-Real-IP headers for proxied requests.
func clientIP(r *http.Request) string {
	// Check X-Forwarded-For first (may contain multiple IPs).
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Take the first (leftmost) IP, the original client.
		if idx := strings.IndexByte(xff, ','); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	// Check X-Real-IP.
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to RemoteAddr (strip port).
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
