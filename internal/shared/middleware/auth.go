package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"djbooking-backend/pkg/jwt"
)

// AuthMiddleware validates the bearer token and puts the authenticated
// principal id into the gin context under "userID".
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": gin.H{"code": "AUTHENTICATION_ERROR", "message": "missing authorization header"}})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": gin.H{"code": "AUTHENTICATION_ERROR", "message": "invalid authorization header format"}})
			c.Abort()
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": gin.H{"code": "AUTHENTICATION_ERROR", "message": "invalid token"}})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(401, gin.H{"error": gin.H{"code": "AUTHENTICATION_ERROR", "message": "invalid user ID in token"}})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
