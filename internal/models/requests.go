package models

// Request payloads mirror the stored shapes one-to-one.

// CreateRoadmapRequest is the body of POST /api/roadmaps.
type CreateRoadmapRequest = Roadmap

// CreateCourseRequest mirrors Course for course creation. No route binds it
// yet; courses currently enter the store only through the seeder.
type CreateCourseRequest = Course
