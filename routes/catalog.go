package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/junaidrashid-git/orderdesk/controllers/product"
)

func SetupCatalogRoutes(r *gin.Engine, deps Dependencies) {
	products := r.Group("/catalog/products")
	{
		products.GET("", productcontroller.GetProducts(deps.Catalog, deps.Logger))
		products.GET("/:id", productcontroller.GetProductByID(deps.Catalog, deps.Logger))
	}
}
