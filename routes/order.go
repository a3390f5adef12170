package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/orderdesk/middleware"
)

// SetupOrderRoutes registers the live order feed. It carries customer
// details, so it needs the admin key like /admin/orders.
func SetupOrderRoutes(r *gin.Engine, deps Dependencies) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateStreamAPIKey(deps.Config.AdminAPIKey))
	{
		// websocket endpoint for real-time order updates
		orders.GET("/ws", deps.Hub.OrderWebSocketHandler)
	}
}
