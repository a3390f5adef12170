package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/junaidrashid-git/orderdesk/catalog"
	"github.com/junaidrashid-git/orderdesk/config"
	orderControllers "github.com/junaidrashid-git/orderdesk/controllers/order"
	"github.com/junaidrashid-git/orderdesk/customers"
	"github.com/junaidrashid-git/orderdesk/formsession"
	"github.com/junaidrashid-git/orderdesk/orders"
)

// Dependencies is everything the route groups hand to their controllers.
type Dependencies struct {
	Config    config.Config
	DB        *gorm.DB
	Catalog   *catalog.Store
	Customers *customers.Store
	Orders    *orders.Store
	Sessions  *formsession.Store
	Hub       *orderControllers.Hub
	Logger    *zap.Logger
}

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, deps Dependencies) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// 2️⃣ Order form routes (JWT-protected)
	SetupDraftRoutes(r, deps)

	// 3️⃣ Catalog browsing
	SetupCatalogRoutes(r, deps)

	// 4️⃣ Admin routes (API-Key-protected)
	SetupAdminRoutes(r, deps)

	// order updates
	SetupOrderRoutes(r, deps)

	// telr payment routes
	SetupTelrRoutes(r, deps)
}
