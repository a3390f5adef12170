package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/orderdesk/catalog"
	"github.com/junaidrashid-git/orderdesk/models"
)

// Spreadsheet columns shared by import and export.
var productColumns = []string{
	"Code", "Name", "Description", "Category", "Price",
	"OriginalPrice", "Discount", "Stock", "Image",
}

// ImportProductsFromExcel upserts catalog rows by product code. Rows without
// a code, a name or a numeric price are skipped.
func ImportProductsFromExcel(store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			product, ok := productFromRow(sheet.Rows[i])
			if !ok {
				skippedCount++
				continue
			}

			created, err := store.UpsertByCode(c.Request.Context(), product)
			switch {
			case err != nil:
				logger.Warn("product import row failed", zap.Int("row", i+1), zap.String("code", product.Code), zap.Error(err))
				skippedCount++
			case created:
				createdCount++
			default:
				updatedCount++
			}
		}

		logger.Info("product import finished",
			zap.Int("created", createdCount),
			zap.Int("updated", updatedCount),
			zap.Int("skipped", skippedCount))

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}

func productFromRow(row *xlsx.Row) (models.Product, bool) {
	if row == nil {
		return models.Product{}, false
	}
	get := func(index int) string {
		if index < len(row.Cells) {
			return strings.TrimSpace(row.Cells[index].String())
		}
		return ""
	}
	optFloat := func(index int) *float64 {
		if v, err := strconv.ParseFloat(get(index), 64); err == nil {
			return &v
		}
		return nil
	}

	code := strings.ToUpper(get(0))
	name := get(1)
	price, err := strconv.ParseFloat(get(4), 64)
	if code == "" || name == "" || err != nil || price < 0 {
		return models.Product{}, false
	}

	product := models.Product{
		Code:          code,
		Name:          name,
		Description:   get(2),
		Category:      get(3),
		Price:         price,
		OriginalPrice: optFloat(5),
		Discount:      optFloat(6),
		Image:         get(8),
	}
	if stock, err := strconv.ParseFloat(get(7), 64); err == nil {
		if stock < 0 {
			return models.Product{}, false
		}
		n := int(stock)
		product.Stock = &n
	}
	return product, true
}
