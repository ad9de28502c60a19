// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"testing"
	"time"
)

func insertDoc(t *testing.T, col Collection, doc Document) string {
	t.Helper()
	id, err := col.Insert(context.Background(), doc)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	return id
}

func TestMemCollectionInsertAndFindOne(t *testing.T) {
	col := NewMemCollection()
	id := insertDoc(t, col, Document{"slug": "first"})

	if !ValidID(id) {
		t.Fatalf("insert returned malformed identifier %q", id)
	}

	doc, err := col.FindOne(context.Background(), Predicate{ID: id})
	if err != nil {
		t.Fatalf("find one failed: %v", err)
	}
	if doc == nil || doc["slug"] != "first" {
		t.Errorf("got %v, want slug first", doc)
	}

	missing, err := col.FindOne(context.Background(), Predicate{Eq: map[string]any{"slug": "nope"}})
	if err != nil {
		t.Fatalf("find one failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for no match, got %v", missing)
	}
}

func TestMemCollectionFindSortsAndPaginates(t *testing.T) {
	col := NewMemCollection()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		insertDoc(t, col, Document{
			"slug":       string(rune('a' + i)),
			"created_at": base.Add(time.Duration(i) * time.Hour),
		})
	}

	docs, err := col.Find(context.Background(), Predicate{}, ListOptions{
		SortField: SortCreatedAt,
		SortDesc:  true,
		Skip:      1,
		Limit:     2,
	})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	if docs[0]["slug"] != "d" || docs[1]["slug"] != "c" {
		t.Errorf("got order %v, %v; want d, c", docs[0]["slug"], docs[1]["slug"])
	}
}

func TestMemCollectionSortMissingLast(t *testing.T) {
	col := NewMemCollection()
	insertDoc(t, col, Document{"slug": "no-date", "published_at": nil})
	insertDoc(t, col, Document{"slug": "dated", "published_at": time.Now()})

	docs, err := col.Find(context.Background(), Predicate{}, ListOptions{
		SortField: SortPublishedAt,
		SortDesc:  true,
	})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if docs[0]["slug"] != "dated" {
		t.Errorf("dated document should sort first, got %v", docs[0]["slug"])
	}
}

func TestMemCollectionContainsAndSearch(t *testing.T) {
	col := NewMemCollection()
	insertDoc(t, col, Document{"title": "Shipping Go Services", "tags": []string{"go", "infra"}})
	insertDoc(t, col, Document{"title": "Cooking at Home", "tags": []string{"food"}})

	ctx := context.Background()

	n, err := col.Count(ctx, Predicate{Contains: map[string]string{"tags": "go"}})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("tag filter matched %d, want 1", n)
	}

	// Search is case-insensitive substring matching.
	docs, err := col.Find(ctx, Predicate{Search: &Search{Term: "SHIPPING", Fields: []string{"title"}}}, ListOptions{})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(docs) != 1 || docs[0]["title"] != "Shipping Go Services" {
		t.Errorf("search matched %v", docs)
	}
}

func TestMemCollectionUpdateAndDelete(t *testing.T) {
	col := NewMemCollection()
	ctx := context.Background()
	id := insertDoc(t, col, Document{"slug": "post", "title": "v1"})

	matched, err := col.UpdateOne(ctx, Predicate{ID: id}, Document{"title": "v2"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if matched != 1 {
		t.Fatalf("matched = %d, want 1", matched)
	}

	doc, _ := col.FindOne(ctx, Predicate{ID: id})
	if doc["title"] != "v2" {
		t.Errorf("title = %v, want v2", doc["title"])
	}

	deleted, err := col.DeleteOne(ctx, Predicate{ID: id})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}

	deleted, err = col.DeleteOne(ctx, Predicate{ID: id})
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("second delete removed %d documents", deleted)
	}
}

func TestMemCollectionReturnsCopies(t *testing.T) {
	col := NewMemCollection()
	ctx := context.Background()
	id := insertDoc(t, col, Document{"title": "original"})

	doc, _ := col.FindOne(ctx, Predicate{ID: id})
	doc["title"] = "tampered"

	again, _ := col.FindOne(ctx, Predicate{ID: id})
	if again["title"] != "original" {
		t.Error("stored document aliased by a returned copy")
	}
}
