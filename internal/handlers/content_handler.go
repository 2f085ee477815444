package handlers

import (
	"errors"
	"net/http"

	"nazarblog/internal/models"
	"nazarblog/internal/seed"
	"nazarblog/internal/store"
	"nazarblog/internal/utils"
	"nazarblog/internal/validators"
	"nazarblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// errStoreUnavailable is returned by every content route when the process
// started without a database connection.
var errStoreUnavailable = errors.New("database not initialized")

type ContentHandler struct {
	store  store.Store
	seeder *seed.Seeder
	log    *logger.Logger
}

func NewContentHandler(st store.Store, seeder *seed.Seeder, log *logger.Logger) *ContentHandler {
	return &ContentHandler{
		store:  st,
		seeder: seeder,
		log:    log,
	}
}

// ListRoadmaps returns every roadmap matching the optional language and level
// query parameters. An empty collection yields [], not an error.
func (h *ContentHandler) ListRoadmaps(c *gin.Context) {
	if h.store == nil {
		utils.ServerErrorResponse(c, errStoreUnavailable)
		return
	}

	filter := store.ContentFilter{
		Language: c.Query("language"),
		Level:    c.Query("level"),
	}

	var roadmaps []models.Roadmap
	if err := h.store.GetDocuments(c.Request.Context(), utils.CollectionRoadmap, filter.BSON(), 0, &roadmaps); err != nil {
		h.log.WithError(err).Error("Failed to list roadmaps")
		utils.ServerErrorResponse(c, err)
		return
	}
	if roadmaps == nil {
		roadmaps = []models.Roadmap{}
	}

	c.JSON(http.StatusOK, roadmaps)
}

// CreateRoadmap validates and inserts a new roadmap.
func (h *ContentHandler) CreateRoadmap(c *gin.Context) {
	if h.store == nil {
		utils.ServerErrorResponse(c, errStoreUnavailable)
		return
	}

	var payload models.CreateRoadmapRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	payload.ApplyDefaults()
	if errs := validators.ValidateStruct(&payload); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	if err := h.store.CreateDocument(c.Request.Context(), utils.CollectionRoadmap, payload); err != nil {
		h.log.WithError(err).Error("Failed to create roadmap")
		utils.ServerErrorResponse(c, err)
		return
	}

	utils.StatusOKResponse(c, http.StatusCreated)
}

// ListCourses returns every course matching the optional language and level
// query parameters.
func (h *ContentHandler) ListCourses(c *gin.Context) {
	if h.store == nil {
		utils.ServerErrorResponse(c, errStoreUnavailable)
		return
	}

	filter := store.ContentFilter{
		Language: c.Query("language"),
		Level:    c.Query("level"),
	}

	var courses []models.Course
	if err := h.store.GetDocuments(c.Request.Context(), utils.CollectionCourse, filter.BSON(), 0, &courses); err != nil {
		h.log.WithError(err).Error("Failed to list courses")
		utils.ServerErrorResponse(c, err)
		return
	}
	if courses == nil {
		courses = []models.Course{}
	}

	c.JSON(http.StatusOK, courses)
}

// GetCourseBySlug returns the first course whose slug matches the path value.
func (h *ContentHandler) GetCourseBySlug(c *gin.Context) {
	if h.store == nil {
		utils.ServerErrorResponse(c, errStoreUnavailable)
		return
	}

	filter := store.ContentFilter{Slug: c.Param("slug")}

	var courses []models.Course
	if err := h.store.GetDocuments(c.Request.Context(), utils.CollectionCourse, filter.BSON(), 1, &courses); err != nil {
		h.log.WithError(err).Error("Failed to get course by slug")
		utils.ServerErrorResponse(c, err)
		return
	}
	if len(courses) == 0 {
		utils.NotFoundResponse(c, "Course")
		return
	}

	c.JSON(http.StatusOK, courses[0])
}

// SeedContent inserts the sample content if it is not already present and
// reports what was inserted in this call.
func (h *ContentHandler) SeedContent(c *gin.Context) {
	if h.store == nil {
		utils.ServerErrorResponse(c, errStoreUnavailable)
		return
	}

	result, err := h.seeder.Run(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("Seeding failed")
		utils.ServerErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"created": result,
	})
}
