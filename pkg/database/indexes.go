package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the application relies on. Safe to call on
// every startup; index creation is a no-op when the index already exists.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	// Course slugs act as external identifiers, so duplicates are rejected
	// at the collection level.
	_, err := db.Collection("course").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create course slug index: %w", err)
	}

	_, err = db.Collection("roadmap").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "language", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create roadmap language index: %w", err)
	}

	return nil
}
