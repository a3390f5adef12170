package catalog_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/orderdesk/catalog"
	"github.com/junaidrashid-git/orderdesk/models"
	"github.com/junaidrashid-git/orderdesk/testsupport"
)

func codes(p catalog.Page) []string {
	out := make([]string, 0, len(p.Products))
	for _, prod := range p.Products {
		out = append(out, prod.Code)
	}
	return out
}

func TestStore_SearchMatchesNameOrCodeCaseInsensitively(t *testing.T) {
	db := testsupport.DB(t)
	testsupport.SeedProducts(t, db)
	store := catalog.NewStore(db)

	page, err := store.Search(context.Background(), "WASH", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"PROD002"}, codes(page))
	assert.Equal(t, 1, page.Total)

	page, err = store.Search(context.Background(), "prod004", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"PROD004"}, codes(page))
}

func TestStore_SearchRanksPrefixMatchesFirst(t *testing.T) {
	db := testsupport.DB(t)
	testsupport.SeedProducts(t, db)
	store := catalog.NewStore(db)

	page, err := store.Search(context.Background(), "s", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"PROD002", "PROD005", "PROD001", "PROD003", "PROD004"}, codes(page))
}

func TestStore_SearchExactCodeFirst(t *testing.T) {
	db := testsupport.DB(t)
	testsupport.SeedProducts(t, db)
	store := catalog.NewStore(db)

	page, err := store.Search(context.Background(), "PROD003", 1, 10)
	require.NoError(t, err)
	require.NotEmpty(t, page.Products)
	assert.Equal(t, "PROD003", page.Products[0].Code)
	assert.Equal(t, "Canvas School Bag", page.Products[0].Name)
	require.NotNil(t, page.Products[0].OriginalPrice)
	assert.Equal(t, 150.0, *page.Products[0].OriginalPrice)
}

func TestStore_SearchBlankQueryListsFirstPage(t *testing.T) {
	db := testsupport.DB(t)
	testsupport.SeedProducts(t, db)
	store := catalog.NewStore(db)

	page, err := store.Search(context.Background(), "   ", 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, []string{"PROD001", "PROD002"}, codes(page))
	assert.Equal(t, 5, page.Total)
}

func TestStore_SearchNoMatch(t *testing.T) {
	db := testsupport.DB(t)
	testsupport.SeedProducts(t, db)

	page, err := catalog.NewStore(db).Search(context.Background(), "zzz", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.Equal(t, 0, page.Total)
}

func TestStore_AllPaginates(t *testing.T) {
	db := testsupport.DB(t)
	testsupport.SeedProducts(t, db)
	store := catalog.NewStore(db)

	page, err := store.All(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"PROD003", "PROD004"}, codes(page))
	assert.Equal(t, 5, page.Total)

	page, err = store.All(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, catalog.DefaultListLimit, page.Limit)
	assert.Len(t, page.Products, 5)
}

func TestStore_Get(t *testing.T) {
	db := testsupport.DB(t)
	rows := testsupport.SeedProducts(t, db)
	store := catalog.NewStore(db)

	p, err := store.Get(context.Background(), strconv.FormatUint(uint64(rows[4].ID), 10))
	require.NoError(t, err)
	assert.Equal(t, "PROD005", p.Code)
	assert.False(t, p.Addable())

	_, err = store.Get(context.Background(), "999")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = store.Get(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestStore_UpsertByCode(t *testing.T) {
	db := testsupport.DB(t)
	testsupport.SeedProducts(t, db)
	store := catalog.NewStore(db)
	ctx := context.Background()

	created, err := store.UpsertByCode(ctx, models.Product{Code: "PROD001", Name: "Hooded Sweatshirt", Price: 250})
	require.NoError(t, err)
	assert.False(t, created)

	created, err = store.UpsertByCode(ctx, models.Product{Code: "PROD009", Name: "Desk Lamp", Price: 799})
	require.NoError(t, err)
	assert.True(t, created)

	rows, err := store.Export(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Hooded Sweatshirt", rows[0].Name)
	assert.Equal(t, 250.0, rows[0].Price)
	assert.Equal(t, "PROD009", rows[5].Code)
}

func TestStore_SearchTreatsWildcardsLiterally(t *testing.T) {
	db := testsupport.DB(t)
	testsupport.SeedProducts(t, db)
	store := catalog.NewStore(db)
	require.NoError(t, db.Create(&models.Product{Code: "PROD_100", Name: "50% Off Bundle", Price: 10}).Error)

	tests := []struct {
		query string
		want  []string
	}{
		{"_", []string{"PROD_100"}},
		{"PROD00_", []string{}},
		{"%", []string{"PROD_100"}},
		{"50%", []string{"PROD_100"}},
		{"!", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			page, err := store.Search(context.Background(), tt.query, 1, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.want, codes(page))
			assert.Equal(t, len(tt.want), page.Total)
		})
	}
}
