package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/orderdesk/auth"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Dependencies) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/session", auth.CreateSession(deps.Sessions, deps.Config.JWTSecret, deps.Config.SessionTTL))
	}
}
