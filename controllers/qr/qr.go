package qrcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/junaidrashid-git/orderdesk/models"
)

var unsafeName = regexp.MustCompile(`[^\w\-.]`)

// QRDir is where payment QR images live below the uploads directory.
func QRDir(uploadsDir string) string {
	return filepath.Join(uploadsDir, "qr")
}

// HandleQRFileUpload stores the image under uploads/qr and records its public
// URL. Orders paid by QR point at the most recent upload.
func HandleQRFileUpload(db *gorm.DB, uploadsDir, publicBaseURL string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		filename := fmt.Sprintf("%d_%s", time.Now().Unix(), unsafeName.ReplaceAllString(file.Filename, "_"))
		dir := QRDir(uploadsDir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			logger.Error("create qr folder", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
			logger.Error("save qr file", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		fileURL := fmt.Sprintf("%s/uploads/qr/%s", publicBaseURL, filename)
		record, err := models.SaveQRFile(db.WithContext(c.Request.Context()), filename, fileURL)
		if err != nil {
			_ = os.Remove(filepath.Join(dir, filename))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save QR file record"})
			return
		}

		logger.Info("📷 QR file uploaded", zap.String("file", file.Filename), zap.String("url", fileURL))
		c.JSON(http.StatusCreated, gin.H{
			"qr_file": record,
			"message": "File uploaded successfully",
		})
	}
}

// GET /admin/qr
func ListQRFiles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		files, err := models.GetAllQRFiles(db.WithContext(c.Request.Context()))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch QR files"})
			return
		}
		c.JSON(http.StatusOK, files)
	}
}
