package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hms-backend/utils"
)

// Auth validates the bearer token and stores the user identity on the
// context for downstream handlers.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		claims, err := utils.ParseAccessToken(raw)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userID", claims["sub"])
		c.Set("username", claims["username"])
		c.Set("role", claims["role"])
		c.Next()
	}
}
