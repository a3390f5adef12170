package routes

import (
	"github.com/gin-gonic/gin"

	customerControllers "github.com/junaidrashid-git/orderdesk/controllers/customer"
	orderControllers "github.com/junaidrashid-git/orderdesk/controllers/order"
	productcontroller "github.com/junaidrashid-git/orderdesk/controllers/product"
	qrcontroller "github.com/junaidrashid-git/orderdesk/controllers/qr"
	"github.com/junaidrashid-git/orderdesk/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, deps Dependencies) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(deps.Config.AdminAPIKey))
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(deps.Catalog, deps.Logger))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(deps.Catalog, deps.Logger))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.Catalog))
		}

		// ─────────── Customers ───────────
		customerAdmin := adminGroup.Group("/customers")
		{
			customerAdmin.GET("", customerControllers.SearchCustomers(deps.Customers, deps.Logger))
			customerAdmin.POST("", customerControllers.CreateCustomer(deps.Customers))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(deps.Orders))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(deps.Orders))
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(deps.Orders))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(deps.Orders))
			orderAdmin.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(deps.Orders))
			orderAdmin.POST("/:orderID/payment-link", orderControllers.ResendPaymentLinkHandler(deps.Orders, deps.Logger))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(deps.Orders))
		}

		// ─────────── Payment QR files ───────────
		qrAdmin := adminGroup.Group("/qr")
		{
			qrAdmin.POST("/upload", qrcontroller.HandleQRFileUpload(deps.DB, deps.Config.UploadsDir, deps.Config.PublicBaseURL, deps.Logger))
			qrAdmin.GET("", qrcontroller.ListQRFiles(deps.DB))
			qrAdmin.DELETE("/:id", qrcontroller.DeleteQRFileHandler(deps.DB, deps.Config.UploadsDir, deps.Logger))
		}
	}
}
