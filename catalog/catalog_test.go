package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_Addable(t *testing.T) {
	zero, some, negative := 0, 3, -2
	assert.True(t, Product{}.Addable())
	assert.True(t, Product{Stock: &some}.Addable())
	assert.False(t, Product{Stock: &zero}.Addable())
	assert.False(t, Product{Stock: &negative}.Addable())
}

func TestProduct_MarshalJSONIncludesAddable(t *testing.T) {
	zero := 0
	raw, err := json.Marshal(Product{ID: "5", Code: "PROD005", Name: "Smart Watch", Price: 8999, Stock: &zero})
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "PROD005", got["code"])
	assert.Equal(t, false, got["addable"])
	assert.Equal(t, float64(0), got["stock"])
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, DefaultSearchLimit},
		{2, 5, 2, 5},
		{-1, 500, 1, MaxLimit},
	}
	for _, tt := range tests {
		page, limit := normalizePage(tt.page, tt.limit, DefaultSearchLimit)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantLimit, limit)
	}
}
