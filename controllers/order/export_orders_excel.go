package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/junaidrashid-git/orderdesk/orders"
)

// GET /admin/orders/export-excel writes one row per order line item.
func ExportOrdersToExcel(store *orders.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderNumber", "CreatedAt", "Customer", "Mobile", "Email",
			"Status", "PaymentStatus", "PaymentMethod",
			"ProductCode", "ProductName", "Price", "Quantity", "LineTotal",
			"Subtotal", "CouponCode", "Discounts", "Shipping", "Total",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range list {
			discounts := o.TotalDiscount + o.CouponDiscount + o.BankDiscount
			for _, item := range o.Items {
				row := sheet.AddRow()
				row.AddCell().SetValue(o.OrderNumber)
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
				row.AddCell().SetValue(o.FirstName + " " + o.LastName)
				row.AddCell().SetValue(o.MobileNumber)
				row.AddCell().SetValue(o.Email)
				row.AddCell().SetValue(string(o.Status))
				row.AddCell().SetValue(string(o.PaymentStatus))
				row.AddCell().SetValue(o.PaymentMethod)
				row.AddCell().SetValue(item.ProductCode)
				row.AddCell().SetValue(item.ProductName)
				row.AddCell().SetValue(item.Price)
				row.AddCell().SetValue(item.Quantity)
				row.AddCell().SetValue(item.Total)
				row.AddCell().SetValue(o.Subtotal)
				row.AddCell().SetValue(o.CouponCode)
				row.AddCell().SetValue(discounts)
				row.AddCell().SetValue(o.ShippingCost)
				row.AddCell().SetValue(o.TotalAmount)
			}
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
