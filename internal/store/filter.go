package store

import "go.mongodb.org/mongo-driver/bson"

// ContentFilter is the only way handlers build store filters. Field names are
// fixed here once, so a typo cannot silently produce a filter that matches
// nothing.
type ContentFilter struct {
	Language string
	Level    string
	Slug     string
}

// BSON returns the equality filter for the set fields. A zero ContentFilter
// yields an empty filter, matching every document.
func (f ContentFilter) BSON() bson.M {
	filter := bson.M{}
	if f.Language != "" {
		filter["language"] = f.Language
	}
	if f.Level != "" {
		filter["level"] = f.Level
	}
	if f.Slug != "" {
		filter["slug"] = f.Slug
	}
	return filter
}
