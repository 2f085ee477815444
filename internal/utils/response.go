package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error responses carry a single "detail" key; validation failures carry the
// failing fields under the same key. Clients depend on these exact shapes.

func StatusOKResponse(c *gin.Context, statusCode int) {
	c.JSON(statusCode, gin.H{"status": "ok"})
}

func DetailResponse(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, gin.H{"detail": detail})
}

func ServerErrorResponse(c *gin.Context, err error) {
	DetailResponse(c, http.StatusInternalServerError, err.Error())
}

func NotFoundResponse(c *gin.Context, resource string) {
	DetailResponse(c, http.StatusNotFound, resource+" not found")
}

func ValidationErrorResponse(c *gin.Context, details interface{}) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": details})
}
