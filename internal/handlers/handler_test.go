// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Handler tests run the full router over in-memory collections, driving
// the API exactly the way an HTTP client would.
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"contenthub/internal/handlers"
	"contenthub/internal/middleware"
	"contenthub/internal/router"
	"contenthub/internal/store"
)

type env struct {
	router     chi.Router
	posts      *store.Repository
	categories *store.Repository
}

func newEnv(t *testing.T) *env {
	t.Helper()
	posts := store.NewRepository(store.NewMemCollection())
	categories := store.NewRepository(store.NewMemCollection())

	limiter := middleware.NewSlidingWindow(10_000, time.Minute)
	t.Cleanup(limiter.Stop)

	return &env{
		router: router.New(
			handlers.NewHealth(nil),
			handlers.NewAdmin(posts, categories),
			handlers.NewPublic(posts, categories),
			handlers.NewFeed(posts),
			limiter,
			[]string{"*"},
		),
		posts:      posts,
		categories: categories,
	}
}

// do performs a request against the router. A non-nil body is sent as JSON.
func (e *env) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a JSON object response body.
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

// decodeList unmarshals a JSON array response body.
func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

// createPost creates a post through the API and returns its document.
func (e *env) createPost(t *testing.T, fields map[string]any) map[string]any {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/admin/posts", fields)
	if w.Code != http.StatusCreated {
		t.Fatalf("create post: got %d: %s", w.Code, w.Body.String())
	}
	return decode(t, w)
}

// envelope pulls the items list out of a listing response.
func envelopeItems(t *testing.T, body map[string]any) []any {
	t.Helper()
	items, ok := body["items"].([]any)
	if !ok {
		t.Fatalf("response has no items list: %v", body)
	}
	return items
}
