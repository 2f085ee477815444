// Package store provides the document-store primitives the API is built on:
// insert one document, read documents matching an equality filter. Handlers
// depend on the Store interface so the backing database can be swapped out in
// tests.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

type Store interface {
	// CreateDocument inserts payload as a new document in the named
	// collection. The store assigns an internal identifier; callers never
	// see it.
	CreateDocument(ctx context.Context, collection string, payload interface{}) error

	// GetDocuments decodes every document matching filter into out, which
	// must be a pointer to a slice. A limit of 0 means unbounded. An empty
	// filter matches the whole collection.
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64, out interface{}) error

	// ListCollectionNames returns the collection names in the database.
	ListCollectionNames(ctx context.Context) ([]string, error)

	// DatabaseName returns the configured database name.
	DatabaseName() string

	// Ping checks connectivity.
	Ping(ctx context.Context) error
}
