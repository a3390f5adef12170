package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/orderdesk/catalog"
	"github.com/junaidrashid-git/orderdesk/formsession"
)

type emptyCatalog struct{}

func (emptyCatalog) Search(_ context.Context, _ string, page, limit int) (catalog.Page, error) {
	return catalog.Page{Products: []catalog.Product{}, Page: page, Limit: limit}, nil
}

func (c emptyCatalog) All(ctx context.Context, page, limit int) (catalog.Page, error) {
	return c.Search(ctx, "", page, limit)
}

func (emptyCatalog) Get(context.Context, string) (catalog.Product, error) {
	return catalog.Product{}, catalog.ErrNotFound
}

func newStore(t *testing.T) *formsession.Store {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return formsession.NewStore(ctx, formsession.Deps{Catalog: emptyCatalog{}, Logger: zap.NewNop()}, time.Hour)
}

func TestCreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newStore(t)

	r := gin.New()
	r.POST("/auth/session", CreateSession(store, "secret", time.Hour))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/session", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var out struct {
		SessionID string    `json:"session_id"`
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	_, err := store.Get(out.SessionID)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(out.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, out.SessionID, claims["session_id"])
	assert.Equal(t, RoleOperator, claims["role"])
	assert.WithinDuration(t, time.Now().Add(time.Hour), out.ExpiresAt, time.Minute)
}

func TestCreateSessionWithoutSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newStore(t)

	r := gin.New()
	r.POST("/auth/session", CreateSession(store, "", time.Hour))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/session", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 0, store.Len())
}
