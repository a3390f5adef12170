// Package catalog is the read-only product inventory the order form searches.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
)

const (
	DefaultSearchLimit = 10
	DefaultListLimit   = 20
	MaxLimit           = 100
)

var ErrNotFound = errors.New("product not found")

type Product struct {
	ID            string   `json:"id"`
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Image         string   `json:"image"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Discount      *float64 `json:"discount,omitempty"`
	Description   string   `json:"description,omitempty"`
	Category      string   `json:"category,omitempty"`
	Stock         *int     `json:"stock,omitempty"`
}

// Addable reports whether the product may be put on an order. Untracked
// stock is always addable; tracked stock must be positive.
func (p Product) Addable() bool {
	return p.Stock == nil || *p.Stock > 0
}

// MarshalJSON adds the derived "addable" flag.
func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return json.Marshal(struct {
		plain
		Addable bool `json:"addable"`
	}{plain(p), p.Addable()})
}

// Page is one page of a product listing. Page numbers start at 1.
type Page struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}

type Service interface {
	// Search matches query case-insensitively against name or code. A blank
	// query returns the first page of all products.
	Search(ctx context.Context, query string, page, limit int) (Page, error)
	All(ctx context.Context, page, limit int) (Page, error)
	Get(ctx context.Context, id string) (Product, error)
}

func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}
