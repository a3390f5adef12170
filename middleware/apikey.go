package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidateAPIKey guards the admin routes with the X-API-KEY header. An empty
// configured key rejects every request.
func ValidateAPIKey(key string) gin.HandlerFunc {
	return requireKey(key, func(c *gin.Context) string {
		return c.GetHeader("X-API-KEY")
	})
}

// ValidateStreamAPIKey is ValidateAPIKey for websocket upgrades. Browsers
// cannot set headers on a websocket dial, so the api_key query parameter is
// accepted as well.
func ValidateStreamAPIKey(key string) gin.HandlerFunc {
	return requireKey(key, func(c *gin.Context) string {
		if k := c.GetHeader("X-API-KEY"); k != "" {
			return k
		}
		return c.Query("api_key")
	})
}

func requireKey(key string, provided func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := provided(c)
		if key == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
