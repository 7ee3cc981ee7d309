package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP extracts the originating client IP, preferring the first entry
// of X-Forwarded-For when the request came through a proxy.
func getClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.ClientIP()
}
