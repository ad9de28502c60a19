// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// memCollection is an in-memory Collection used by tests and for running
// the service without a database. It mirrors the store contract exactly:
// generated ObjectID identifiers, insertion-order storage, and the same
// predicate semantics as the MongoDB implementation.
type memCollection struct {
	mu   sync.RWMutex
	docs []Document
}

// NewMemCollection returns an empty in-memory collection.
func NewMemCollection() Collection {
	return &memCollection{}
}

func (c *memCollection) FindOne(ctx context.Context, p Predicate) (Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, d := range c.docs {
		if matches(p, d) {
			return copyDoc(d), nil
		}
	}
	return nil, nil
}

func (c *memCollection) Find(ctx context.Context, p Predicate, o ListOptions) ([]Document, error) {
	c.mu.RLock()
	var out []Document
	for _, d := range c.docs {
		if matches(p, d) {
			out = append(out, copyDoc(d))
		}
	}
	c.mu.RUnlock()

	if o.SortField != "" {
		sort.SliceStable(out, func(i, j int) bool {
			less := lessByField(out[i], out[j], o.SortField)
			if o.SortDesc {
				return !less && !sameByField(out[i], out[j], o.SortField)
			}
			return less
		})
	}

	if o.Skip > 0 {
		if o.Skip >= int64(len(out)) {
			return nil, nil
		}
		out = out[o.Skip:]
	}
	if o.Limit > 0 && o.Limit < int64(len(out)) {
		out = out[:o.Limit]
	}
	return out, nil
}

func (c *memCollection) Count(ctx context.Context, p Predicate) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var n int64
	for _, d := range c.docs {
		if matches(p, d) {
			n++
		}
	}
	return n, nil
}

func (c *memCollection) Insert(ctx context.Context, doc Document) (string, error) {
	id := EncodeID(bson.NewObjectID())
	stored := copyDoc(doc)
	stored["_id"] = id

	c.mu.Lock()
	c.docs = append(c.docs, stored)
	c.mu.Unlock()
	return id, nil
}

func (c *memCollection) UpdateOne(ctx context.Context, p Predicate, set Document) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.docs {
		if matches(p, d) {
			for k, v := range set {
				d[k] = v
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (c *memCollection) DeleteOne(ctx context.Context, p Predicate) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, d := range c.docs {
		if matches(p, d) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// matches evaluates a predicate against a stored document.
func matches(p Predicate, doc Document) bool {
	if p.ID != "" && doc["_id"] != p.ID {
		return false
	}
	for k, v := range p.Eq {
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	for k, v := range p.Contains {
		if !sliceContains(doc[k], v) {
			return false
		}
	}
	if p.Search != nil {
		term := strings.ToLower(p.Search.Term)
		hit := false
		for _, field := range p.Search.Fields {
			if s, ok := doc[field].(string); ok && strings.Contains(strings.ToLower(s), term) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// sliceContains reports whether an array field contains the value,
// tolerating both []string and the []any form BSON decoding produces.
func sliceContains(field any, v string) bool {
	switch tags := field.(type) {
	case []string:
		for _, t := range tags {
			if t == v {
				return true
			}
		}
	case []any:
		for _, t := range tags {
			if t == any(v) {
				return true
			}
		}
	}
	return false
}

// copyDoc shallow-copies a document so callers never alias stored state.
func copyDoc(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// sortTime extracts a comparable timestamp from a field value. The bool
// is false for absent or null values, which sort after present ones.
func sortTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case bson.DateTime:
		return t.Time(), true
	default:
		return time.Time{}, false
	}
}

func lessByField(a, b Document, field string) bool {
	at, aok := sortTime(a[field])
	bt, bok := sortTime(b[field])
	if !aok {
		return false
	}
	if !bok {
		return true
	}
	return at.Before(bt)
}

func sameByField(a, b Document, field string) bool {
	at, aok := sortTime(a[field])
	bt, bok := sortTime(b[field])
	return aok == bok && at.Equal(bt)
}
