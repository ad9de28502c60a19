// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Serialize converts a stored document into its client-safe view: the
// storage identifier field is replaced by a client-facing "id" holding the
// encoded string, and every timestamp value is rewritten as an ISO-8601
// string in UTC regardless of the offset it was stored with. All other
// values pass through unchanged. The input is never mutated; a nil
// document stays nil so "not found" passes through.
func Serialize(doc Document) Document {
	if doc == nil {
		return nil
	}

	out := make(Document, len(doc))
	for k, v := range doc {
		switch t := v.(type) {
		case time.Time:
			out[k] = t.UTC().Format(time.RFC3339Nano)
		case bson.DateTime:
			// BSON datetimes decode as millisecond epoch values.
			out[k] = t.Time().UTC().Format(time.RFC3339Nano)
		default:
			out[k] = v
		}
	}

	switch id := out["_id"].(type) {
	case bson.ObjectID:
		delete(out, "_id")
		out["id"] = EncodeID(id)
	case string:
		// In-memory collections store the encoded form directly.
		delete(out, "_id")
		out["id"] = id
	}

	return out
}
