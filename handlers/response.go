package handlers

import (
	"net/http"

	"roamly/models"

	"github.com/gin-gonic/gin"
)

// respondOK writes the standard success envelope.
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// respondCreated writes the standard success envelope with a 201.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// respondPage writes a paginated success envelope.
func respondPage(c *gin.Context, data any, p models.Pagination) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "pagination": p})
}

// requesterID pulls the authenticated user's id set by the auth middleware.
func requesterID(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
