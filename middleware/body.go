package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewBodySizeLimiter bounds how many bytes a request may carry before
// any handler starts parsing it. Honest clients are rejected up front
// off ContentLength, everything else is cut off mid-stream by
// MaxBytesReader so an oversize body is never fully received.
func NewBodySizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":     "validation_error",
				"message":   "Request body size exceeds limit",
				"requestID": requestID,
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
