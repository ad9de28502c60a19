// Package database handles the MongoDB client lifecycle. It provides a
// Connect function that returns a ready-to-use handle scoped to the
// application database, verified with a ping before use.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// DB wraps the MongoDB client together with the application database.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a MongoDB client for the given URI, scoped to the named
// database. It verifies the deployment is reachable before returning.
func Connect(uri, name string) (*DB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("database connect: %w", err)
	}

	// Verify the deployment is alive.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database ping: %w", err)
	}

	slog.Info("database connected", "database", name)
	return &DB{client: client, db: client.Database(name)}, nil
}

// Collection returns a handle to the named collection.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Ping verifies the deployment is still reachable.
func (d *DB) Ping(ctx context.Context) error {
	if err := d.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// CollectionNames lists the collections present in the database.
func (d *DB) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := d.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// Close disconnects the underlying client.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
