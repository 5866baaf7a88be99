package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"studyhub/config"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the JWT and sets the user email and id in context
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization token"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Authorization token format"})
			c.Abort()
			return
		}

		email, err := utils.ValidateToken(cfg, parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": fmt.Sprintf("Token validation error: %v", err)})
			c.Abort()
			return
		}

		userID, err := utils.GetUserIDFromEmail(email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown account"})
			c.Abort()
			return
		}

		c.Set("email", email)
		c.Set("userID", userID)
		c.Next()
	}
}
