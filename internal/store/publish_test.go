// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"
	"time"
)

var stampTime = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

func TestPublishMergeStampsOnCreate(t *testing.T) {
	effective, _ := publishMerge(nil, Document{
		"title":        "launch",
		"status":       "published",
		"published_at": nil,
	}, stampTime)

	if got := effective["published_at"]; got != stampTime {
		t.Errorf("published_at = %v, want %v", got, stampTime)
	}
}

func TestPublishMergeDraftNotStamped(t *testing.T) {
	effective, changes := publishMerge(nil, Document{
		"title":        "wip",
		"status":       "draft",
		"published_at": nil,
	}, stampTime)

	if effective["published_at"] != nil {
		t.Errorf("draft got published_at = %v", effective["published_at"])
	}
	if changes["published_at"] != nil {
		t.Errorf("draft change set got published_at = %v", changes["published_at"])
	}
}

func TestPublishMergeKeepsExplicitTimestamp(t *testing.T) {
	explicit := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	effective, _ := publishMerge(nil, Document{
		"status":       "published",
		"published_at": explicit,
	}, stampTime)

	if got := effective["published_at"]; got != explicit {
		t.Errorf("explicit published_at overwritten: got %v, want %v", got, explicit)
	}
}

func TestPublishMergeStampsOnStatusFlip(t *testing.T) {
	existing := Document{
		"title":        "draft post",
		"status":       "draft",
		"published_at": nil,
	}
	effective, changes := publishMerge(existing, Document{"status": "published"}, stampTime)

	if got := effective["published_at"]; got != stampTime {
		t.Errorf("published_at = %v, want %v", got, stampTime)
	}
	if got := changes["published_at"]; got != stampTime {
		t.Errorf("change set published_at = %v, want %v", got, stampTime)
	}
	if got := changes["status"]; got != "published" {
		t.Errorf("change set status = %v, want published", got)
	}
}

func TestPublishMergeAlreadyPublishedUntouched(t *testing.T) {
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	existing := Document{
		"title":        "old news",
		"status":       "published",
		"published_at": first,
	}
	_, changes := publishMerge(existing, Document{"title": "old news, revised"}, stampTime)

	if _, ok := changes["published_at"]; ok {
		t.Error("published_at restamped on an already published document")
	}
}

func TestPublishMergeUsesMergedStatus(t *testing.T) {
	// Patch supplies only published_at: null while the stored document is
	// already published, so the merged view triggers a restamp.
	existing := Document{
		"status":       "published",
		"published_at": time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	effective, changes := publishMerge(existing, Document{"published_at": nil}, stampTime)

	if got := effective["published_at"]; got != stampTime {
		t.Errorf("published_at = %v, want %v", got, stampTime)
	}
	if got := changes["published_at"]; got != stampTime {
		t.Errorf("change set published_at = %v, want %v", got, stampTime)
	}
}

func TestPublishMergeUnknownStatusStoredAsIs(t *testing.T) {
	effective, _ := publishMerge(nil, Document{
		"status":       "archived",
		"published_at": nil,
	}, stampTime)

	if got := effective["status"]; got != "archived" {
		t.Errorf("status = %v, want archived", got)
	}
	if effective["published_at"] != nil {
		t.Errorf("unknown status stamped published_at = %v", effective["published_at"])
	}
}
