// Package seed inserts the canned sample content used to bootstrap an empty
// deployment. Seeding is idempotent per collection: roadmaps are inserted only
// when none exist, courses only when their slug is absent.
package seed

import (
	"context"
	"fmt"
	"sync"

	"nazarblog/internal/store"
	"nazarblog/internal/utils"
	"nazarblog/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// Result reports what this particular run actually inserted.
type Result struct {
	Roadmaps int `json:"roadmaps"`
	Courses  int `json:"courses"`
}

type Seeder struct {
	store store.Store
	log   *logger.Logger

	// mu serializes the check-then-insert sequence so concurrent seed
	// requests within this process cannot double-insert.
	mu sync.Mutex
}

func NewSeeder(st store.Store, log *logger.Logger) *Seeder {
	return &Seeder{
		store: st,
		log:   log,
	}
}

// Run performs one seeding pass. Not atomic: a store error mid-run leaves the
// documents inserted so far in place, and the next run picks up where this one
// stopped.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result Result

	var existing []bson.M
	if err := s.store.GetDocuments(ctx, utils.CollectionRoadmap, bson.M{}, 1, &existing); err != nil {
		return result, fmt.Errorf("failed to check existing roadmaps: %w", err)
	}

	if len(existing) == 0 {
		for _, roadmap := range sampleRoadmaps() {
			if err := s.store.CreateDocument(ctx, utils.CollectionRoadmap, roadmap); err != nil {
				return result, fmt.Errorf("failed to seed roadmap %q: %w", roadmap.Title, err)
			}
			result.Roadmaps++
		}
	}

	for _, course := range sampleCourses() {
		filter := store.ContentFilter{Slug: course.Slug}

		var match []bson.M
		if err := s.store.GetDocuments(ctx, utils.CollectionCourse, filter.BSON(), 1, &match); err != nil {
			return result, fmt.Errorf("failed to check course %q: %w", course.Slug, err)
		}
		if len(match) > 0 {
			continue
		}

		if err := s.store.CreateDocument(ctx, utils.CollectionCourse, course); err != nil {
			return result, fmt.Errorf("failed to seed course %q: %w", course.Slug, err)
		}
		result.Courses++
	}

	s.log.WithFields(map[string]interface{}{
		"roadmaps": result.Roadmaps,
		"courses":  result.Courses,
	}).Info("Seeding completed")

	return result, nil
}
