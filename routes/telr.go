package routes

import (
	"github.com/gin-gonic/gin"

	telrControllers "github.com/junaidrashid-git/orderdesk/controllers/telr"
	"github.com/junaidrashid-git/orderdesk/middleware"
)

func SetupTelrRoutes(r *gin.Engine, deps Dependencies) {
	payment := r.Group("/payment")
	{
		// Webhook endpoint: middleware handles sandbox/prod verification
		payment.POST("/webhook",
			middleware.TelrWebhookAuth(deps.Config.Payments, deps.Logger),
			telrControllers.TelrWebhookHandler(deps.Orders, deps.Logger),
		)
	}
}
