package routes

import (
	"github.com/gin-gonic/gin"

	draftControllers "github.com/junaidrashid-git/orderdesk/controllers/draft"
	"github.com/junaidrashid-git/orderdesk/middleware"
)

// SetupDraftRoutes registers the order form endpoints. The session comes
// from the bearer token.
func SetupDraftRoutes(r *gin.Engine, deps Dependencies) {
	store := deps.Sessions

	draft := r.Group("/draft")
	draft.Use(middleware.ValidateToken(deps.Config.JWTSecret))
	{
		draft.GET("", draftControllers.GetDraft(store))
		draft.PATCH("/fields", draftControllers.UpdateFields(store))
		draft.PUT("/address/:type", draftControllers.UpdateAddress(store))
		draft.PUT("/mirror", draftControllers.SetMirror(store))

		// ─────────── Line items ───────────
		draft.POST("/products", draftControllers.AddProduct(store))
		draft.PUT("/products/:itemID", draftControllers.UpdateQuantity(store))
		draft.DELETE("/products/:itemID", draftControllers.RemoveProduct(store))

		// ─────────── Product search ───────────
		draft.PUT("/search", draftControllers.SetSearch(store))
		draft.GET("/search", draftControllers.GetSearch(store))

		// ─────────── Customer lookup ───────────
		draft.POST("/customer/search", draftControllers.SearchCustomer(store))
		draft.POST("/customer/populate", draftControllers.PopulateCustomer(store))

		draft.POST("/coupon", draftControllers.ApplyCoupon(store))
		draft.POST("/validate", draftControllers.Validate(store))
		draft.POST("/submit", draftControllers.Submit(store))
		draft.POST("/reset", draftControllers.Reset(store))
	}
}
