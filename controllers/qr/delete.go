package qrcontroller

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/junaidrashid-git/orderdesk/models"
)

// DELETE /admin/qr/:id
func DeleteQRFileHandler(db *gorm.DB, uploadsDir string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}

		tx := db.WithContext(c.Request.Context())
		qrFile, err := models.FindQRFile(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "QR file not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query QR file"})
			return
		}

		filePath := filepath.Join(QRDir(uploadsDir), qrFile.FileName)
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file from disk"})
			return
		}

		if err := tx.Delete(qrFile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete QR file record"})
			return
		}

		logger.Info("🗑️ QR file deleted", zap.String("file", qrFile.FileName))
		c.JSON(http.StatusOK, gin.H{"message": "QR file deleted successfully"})
	}
}
