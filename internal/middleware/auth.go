package middleware

import (
	"net/http"
	"strings"

	"freelancehub_backend/internal/auth"
	"freelancehub_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates a Bearer JWT and stores the claims in the
// context. None of the current routes mount it — the API is open by
// product decision — but gateway deployments attach it per route group.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userType", claims.UserType)
		c.Next()
	}
}

// RequireUserType restricts a route to the given user types.
func RequireUserType(types ...models.UserType) gin.HandlerFunc {
	typeSet := make(map[models.UserType]bool)
	for _, t := range types {
		typeSet[t] = true
	}

	return func(c *gin.Context) {
		typeVal, exists := c.Get("userType")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no user type"})
			return
		}

		typeStr, ok := typeVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid user type"})
			return
		}

		if !typeSet[models.UserType(typeStr)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the context, empty
// when the request was not authenticated.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
