package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookshop-api/bookshop/pkg/response"
)

// parseID reads the :id path parameter. A non-numeric value answers 404,
// the same as an id that matches nothing.
func parseID(c *gin.Context, notFound error) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, notFound)
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body, answering 400 on malformed JSON.
// Field-level validation happens after binding, in the dto builders.
func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "malformed JSON body"})
		return false
	}
	return true
}
