package middleware

import (
	"net/http"
	"strings"

	"fstop/portfolio-api/model"
	"fstop/portfolio-api/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewAuthMiddleware authenticates requests off the Authorization
// header. The header must be a two-part "Bearer <token>" value with a
// case-insensitive scheme keyword. Anything else is rejected as
// unauthenticated, it never falls through to a forbidden response.
// On success the user ID and role are set in the request context.
func NewAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "unauthenticated",
				"message":   "Missing Authorization header",
				"requestID": requestID,
			})
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "unauthenticated",
				"message":   "Authorization header must be of the form 'Bearer <token>'",
				"requestID": requestID,
			})
			return
		}

		id, err := security.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "unauthenticated",
				"message":   "Invalid or expired token",
				"requestID": requestID,
			})

			zap.L().Debug("Rejected token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", id.UserID)
		c.Set("role", id.Role)
		c.Next()
	}
}

// RequireAdmin gates admin-only endpoints. It must run after
// NewAuthMiddleware so the role is already in the context.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		if role, ok := c.MustGet("role").(model.Role); !ok || role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "forbidden",
				"message":   "Admin only",
				"requestID": requestID,
			})
			return
		}

		c.Next()
	}
}
