package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"nazarblog/internal/store"
	"nazarblog/internal/utils"

	"github.com/gin-gonic/gin"
)

type DiagnosticHandler struct {
	store store.Store
}

func NewDiagnosticHandler(st store.Store) *DiagnosticHandler {
	return &DiagnosticHandler{store: st}
}

// Root is the liveness marker.
func (h *DiagnosticHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": utils.AppName + " is running",
	})
}

// TestDatabase reports store availability as human-readable status strings.
// It always answers 200: every internal error is rendered inline so the route
// stays usable when the store is down.
func (h *DiagnosticHandler) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store != nil {
		response["database"] = "✅ Available"
		response["database_name"] = h.store.DatabaseName()
		response["connection_status"] = "Connected"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		names, err := h.store.ListCollectionNames(ctx)
		if err != nil {
			response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), utils.MaxDiagnosticErrorLength)
		} else {
			if len(names) > utils.MaxDiagnosticCollections {
				names = names[:utils.MaxDiagnosticCollections]
			}
			response["collections"] = names
			response["database"] = "✅ Connected & Working"
		}
	}

	response["database_url"] = envStatus("DATABASE_URL")
	response["database_name"] = envStatus("DATABASE_NAME")

	c.JSON(http.StatusOK, response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
