// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// mongoCollection adapts a *mongo.Collection to the Collection interface.
type mongoCollection struct {
	col *mongo.Collection
}

// NewMongoCollection wraps a MongoDB collection for use by a Repository.
func NewMongoCollection(col *mongo.Collection) Collection {
	return &mongoCollection{col: col}
}

func (c *mongoCollection) FindOne(ctx context.Context, p Predicate) (Document, error) {
	filter, err := mongoFilter(p)
	if err != nil {
		return nil, err
	}
	var doc Document
	err = c.col.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find one: %w: %w", ErrUnavailable, err)
	}
	return doc, nil
}

func (c *mongoCollection) Find(ctx context.Context, p Predicate, o ListOptions) ([]Document, error) {
	filter, err := mongoFilter(p)
	if err != nil {
		return nil, err
	}

	opts := options.Find()
	if o.SortField != "" {
		dir := 1
		if o.SortDesc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: o.SortField, Value: dir}})
	}
	if o.Skip > 0 {
		opts.SetSkip(o.Skip)
	}
	if o.Limit > 0 {
		opts.SetLimit(o.Limit)
	}

	cursor, err := c.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find: %w: %w", ErrUnavailable, err)
	}
	var docs []Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("iterate cursor: %w: %w", ErrUnavailable, err)
	}
	return docs, nil
}

func (c *mongoCollection) Count(ctx context.Context, p Predicate) (int64, error) {
	filter, err := mongoFilter(p)
	if err != nil {
		return 0, err
	}
	n, err := c.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count: %w: %w", ErrUnavailable, err)
	}
	return n, nil
}

func (c *mongoCollection) Insert(ctx context.Context, doc Document) (string, error) {
	res, err := c.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert one: %w: %w", ErrUnavailable, err)
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return EncodeID(id), nil
}

func (c *mongoCollection) UpdateOne(ctx context.Context, p Predicate, set Document) (int64, error) {
	filter, err := mongoFilter(p)
	if err != nil {
		return 0, err
	}
	res, err := c.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M(set)})
	if err != nil {
		return 0, fmt.Errorf("update one: %w: %w", ErrUnavailable, err)
	}
	return res.MatchedCount, nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, p Predicate) (int64, error) {
	filter, err := mongoFilter(p)
	if err != nil {
		return 0, err
	}
	res, err := c.col.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete one: %w: %w", ErrUnavailable, err)
	}
	return res.DeletedCount, nil
}

// mongoFilter translates a Predicate into the driver's filter form.
func mongoFilter(p Predicate) (bson.M, error) {
	f := bson.M{}
	if p.ID != "" {
		id, err := DecodeID(p.ID)
		if err != nil {
			return nil, err
		}
		f["_id"] = id
	}
	for k, v := range p.Eq {
		f[k] = v
	}
	for k, v := range p.Contains {
		f[k] = bson.M{"$in": bson.A{v}}
	}
	if p.Search != nil {
		or := make(bson.A, 0, len(p.Search.Fields))
		pattern := regexp.QuoteMeta(p.Search.Term)
		for _, field := range p.Search.Fields {
			or = append(or, bson.M{field: bson.Regex{Pattern: pattern, Options: "i"}})
		}
		f["$or"] = or
	}
	return f, nil
}
