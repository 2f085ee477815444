package store

import (
	"context"
	"fmt"

	"nazarblog/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStore struct {
	db *database.MongoDB
}

func NewMongoStore(db *database.MongoDB) Store {
	return &mongoStore{db: db}
}

func (s *mongoStore) CreateDocument(ctx context.Context, collection string, payload interface{}) error {
	_, err := s.db.Collection(collection).InsertOne(ctx, payload)
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return nil
}

func (s *mongoStore) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64, out interface{}) error {
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode documents from %s: %w", collection, err)
	}
	return nil
}

func (s *mongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.Database.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

func (s *mongoStore) DatabaseName() string {
	return s.db.Database.Name()
}

func (s *mongoStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
