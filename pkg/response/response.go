package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

// OK writes a 200 response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// List wraps an ordered sequence in the {"data": [...]} envelope.
func List(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// Error resolves err at the handler boundary and writes the status code and
// body shape its kind calls for:
//
//	validation → 400 {field: [messages]}
//	conflict   → 400 {"error": message}
//	not found  → 404 {"detail": message}
//	forbidden  → 403 {"detail": message}
//	internal   → 500 {"detail": "internal server error"}
func Error(c *gin.Context, err error) {
	appErr := apperrors.Get(err)

	// The internal cause stays in the server log, never in the body.
	if appErr.Err != nil {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr.Err)
	}

	switch appErr.Kind {
	case apperrors.KindValidation:
		c.JSON(http.StatusBadRequest, appErr.Fields)
	case apperrors.KindConflict:
		c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
	case apperrors.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"detail": appErr.Message})
	case apperrors.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"detail": appErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}
