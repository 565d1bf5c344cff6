package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const brokerIDKey = "broker_id"

// Middleware returns a Gin middleware that requires a valid bearer token and
// stores the broker identity on the request context.
func Middleware(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required."})
			c.Abort()
			return
		}

		claims, err := svc.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token."})
			c.Abort()
			return
		}

		c.Set(brokerIDKey, claims.BrokerID)
		c.Next()
	}
}

// BrokerID returns the authenticated broker id set by Middleware
func BrokerID(c *gin.Context) string {
	return c.GetString(brokerIDKey)
}
