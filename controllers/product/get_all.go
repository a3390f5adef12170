package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/orderdesk/catalog"
)

// GetProducts searches the catalog when q is set and lists it otherwise.
// Lookup failures degrade to an empty page.
// GET /catalog/products?q=&page=&limit=
func GetProducts(products catalog.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("q"))
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.Query("limit"))

		var (
			result catalog.Page
			err    error
		)
		if query == "" {
			result, err = products.All(c.Request.Context(), page, limit)
		} else {
			result, err = products.Search(c.Request.Context(), query, page, limit)
		}
		if err != nil {
			logger.Warn("catalog lookup failed", zap.String("q", query), zap.Error(err))
			if page < 1 {
				page = 1
			}
			result = catalog.Page{Products: []catalog.Product{}, Page: page, Limit: limit}
		}

		c.JSON(http.StatusOK, result)
	}
}
