// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"contenthub/internal/models"
)

// publishMerge applies the publish workflow. It merges incoming over
// existing (existing is nil on create; on update only fields explicitly
// present in incoming are considered) and, when the effective result is
// published without a publish timestamp, stamps published_at with now.
//
// It returns the full effective field set and the change set actually
// persisted on update (incoming plus any stamped fields). Pure data
// transformation: it never rejects input — a status outside the known
// enum is stored as-is and simply never matches the published filter.
func publishMerge(existing, incoming Document, now time.Time) (effective, changes Document) {
	effective = make(Document, len(existing)+len(incoming)+1)
	for k, v := range existing {
		effective[k] = v
	}
	for k, v := range incoming {
		effective[k] = v
	}

	changes = make(Document, len(incoming)+2)
	for k, v := range incoming {
		changes[k] = v
	}

	if statusOf(effective) == string(models.StatusPublished) && !hasValue(effective["published_at"]) {
		effective["published_at"] = now
		changes["published_at"] = now
	}
	return effective, changes
}

// statusOf reads the status field, tolerating both raw strings and the
// typed enum form.
func statusOf(doc Document) string {
	switch s := doc["status"].(type) {
	case string:
		return s
	case models.Status:
		return string(s)
	default:
		return ""
	}
}

// hasValue reports whether a field holds an actual value rather than
// being absent or an explicit null.
func hasValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case *time.Time:
		return t != nil
	case time.Time:
		return !t.IsZero()
	case bson.DateTime:
		return t != 0
	default:
		return true
	}
}
