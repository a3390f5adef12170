package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/junaidrashid-git/orderdesk/models"
)

// Store serves the catalog from the products table.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

var byID = clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}}}}

func (s *Store) Search(ctx context.Context, query string, page, limit int) (Page, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return s.All(ctx, 1, limit)
	}
	page, limit = normalizePage(page, limit, DefaultSearchLimit)

	like := models.ContainsPattern(needle)
	prefix := models.EscapeLike(needle) + "%"
	filter := func(tx *gorm.DB) *gorm.DB {
		return tx.Where("LOWER(name) LIKE ? ESCAPE '!' OR LOWER(code) LIKE ? ESCAPE '!'", like, like)
	}

	// exact code, then prefix matches, then the rest; catalog order breaks ties
	rank := clause.OrderBy{Expression: clause.Expr{
		SQL:  "CASE WHEN LOWER(code) = ? THEN 0 WHEN LOWER(code) LIKE ? ESCAPE '!' OR LOWER(name) LIKE ? ESCAPE '!' THEN 1 ELSE 2 END, id",
		Vars: []interface{}{needle, prefix, prefix},
	}}

	return s.page(ctx, filter, rank, page, limit)
}

func (s *Store) All(ctx context.Context, page, limit int) (Page, error) {
	page, limit = normalizePage(page, limit, DefaultListLimit)
	return s.page(ctx, func(tx *gorm.DB) *gorm.DB { return tx }, byID, page, limit)
}

func (s *Store) Get(ctx context.Context, id string) (Product, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return Product{}, ErrNotFound
	}
	var row models.Product
	if err := s.db.WithContext(ctx).First(&row, uint(n)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return fromModel(row), nil
}

// UpsertByCode inserts p or overwrites the product sharing its code.
func (s *Store) UpsertByCode(ctx context.Context, p models.Product) (created bool, err error) {
	db := s.db.WithContext(ctx)

	var existing models.Product
	err = db.Where("code = ?", p.Code).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(&p).Error; err != nil {
			return false, fmt.Errorf("create product %s: %w", p.Code, err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("find product %s: %w", p.Code, err)
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	if err := db.Save(&p).Error; err != nil {
		return false, fmt.Errorf("update product %s: %w", p.Code, err)
	}
	return false, nil
}

// Export returns every product in catalog order.
func (s *Store) Export(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	if err := s.db.WithContext(ctx).Clauses(byID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}
	return rows, nil
}

func (s *Store) page(ctx context.Context, filter func(*gorm.DB) *gorm.DB, order clause.OrderBy, page, limit int) (Page, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Scopes(filter).Count(&total).Error; err != nil {
		return Page{}, fmt.Errorf("count products: %w", err)
	}

	var rows []models.Product
	if err := s.db.WithContext(ctx).
		Scopes(filter).
		Clauses(order).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return Page{}, fmt.Errorf("list products: %w", err)
	}

	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, fromModel(row))
	}
	return Page{Products: products, Total: int(total), Page: page, Limit: limit}, nil
}

func fromModel(p models.Product) Product {
	return Product{
		ID:            strconv.FormatUint(uint64(p.ID), 10),
		Code:          p.Code,
		Name:          p.Name,
		Price:         p.Price,
		Image:         p.Image,
		OriginalPrice: p.OriginalPrice,
		Discount:      p.Discount,
		Description:   p.Description,
		Category:      p.Category,
		Stock:         p.Stock,
	}
}
