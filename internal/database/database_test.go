// Package database tests cover the MongoDB client lifecycle. Connection
// tests are integration tests that require a running MongoDB instance and
// skip themselves when none is reachable.
package database

import (
	"context"
	"os"
	"testing"
)

func testURI() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}
	return "mongodb://localhost:27017"
}

func TestConnect(t *testing.T) {
	db, err := Connect(testURI(), "contenthub_test")
	if err != nil {
		t.Skipf("skipping: database not available: %v", err)
	}
	defer db.Close(context.Background())

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("ping failed after Connect: %v", err)
	}

	if _, err := db.CollectionNames(context.Background()); err != nil {
		t.Errorf("listing collections failed: %v", err)
	}
}

func TestConnectUnreachable(t *testing.T) {
	_, err := Connect("mongodb://localhost:1/?connectTimeoutMS=200&serverSelectionTimeoutMS=200", "contenthub_test")
	if err == nil {
		t.Error("expected error for unreachable deployment")
	}
}

func TestConnectInvalidURI(t *testing.T) {
	_, err := Connect("not-a-mongodb-uri", "contenthub_test")
	if err == nil {
		t.Error("expected error for malformed URI")
	}
}
