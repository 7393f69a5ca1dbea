package middleware

import (
	"net/http"

	"blogapi/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminOnly requires the authenticated caller to carry the admin claim.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
			c.Abort()
			return
		}
		if admin, ok := isAdmin.(bool); !ok || !admin {
			response.Error(c, http.StatusForbidden, "Forbidden", "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
