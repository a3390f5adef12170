package qrcontroller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/orderdesk/models"
	"github.com/junaidrashid-git/orderdesk/testsupport"
)

func TestQRFileLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testsupport.DB(t)
	uploads := t.TempDir()

	r := gin.New()
	r.POST("/qr/upload", HandleQRFileUpload(db, uploads, "https://shop.example", zap.NewNop()))
	r.GET("/qr", ListQRFiles(db))
	r.DELETE("/qr/:id", DeleteQRFileHandler(db, uploads, zap.NewNop()))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "store qr (1).png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/qr/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var out struct {
		QRFile models.QRFile `json:"qr_file"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Regexp(t, `^\d+_store_qr__1_\.png$`, out.QRFile.FileName)
	assert.Equal(t, "https://shop.example/uploads/qr/"+out.QRFile.FileName, out.QRFile.FileURL)

	saved := filepath.Join(QRDir(uploads), out.QRFile.FileName)
	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	latest, err := models.LatestQRFile(db)
	require.NoError(t, err)
	assert.Equal(t, out.QRFile.ID, latest.ID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/qr", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.QRFile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	id := strconv.FormatUint(uint64(out.QRFile.ID), 10)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/qr/"+id, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NoFileExists(t, saved)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/qr/"+id, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadWithoutFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/qr/upload", HandleQRFileUpload(testsupport.DB(t), t.TempDir(), "", zap.NewNop()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/qr/upload", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
