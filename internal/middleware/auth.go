package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursespeak/coursespeak/internal/auth"
)

// RequireAdmin short-circuits with a structured 401 before any store access
// when the request carries no valid admin credential.
func RequireAdmin(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.Authorize(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}
