package routes

import (
	"nazarblog/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContentRoutes registers the roadmap, course, and seed routes under the
// given group. There is deliberately no POST for courses; the seeder is the
// only course writer today.
func SetupContentRoutes(r *gin.RouterGroup, h *handlers.ContentHandler) {
	roadmaps := r.Group("/roadmaps")
	{
		roadmaps.GET("", h.ListRoadmaps)
		roadmaps.POST("", h.CreateRoadmap)
	}

	courses := r.Group("/courses")
	{
		courses.GET("", h.ListCourses)
		courses.GET("/:slug", h.GetCourseBySlug)
	}

	r.POST("/seed", h.SeedContent)
}

// SetupDiagnosticRoutes registers the liveness and database diagnostic routes
// at the router root.
func SetupDiagnosticRoutes(r *gin.Engine, h *handlers.DiagnosticHandler) {
	r.GET("/", h.Root)
	r.GET("/test", h.TestDatabase)
}
