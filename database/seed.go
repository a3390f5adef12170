package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/junaidrashid-git/orderdesk/customers"
	"github.com/junaidrashid-git/orderdesk/models"
)

//go:embed seed.yaml
var seedYAML []byte

type SeedData struct {
	Products  []SeedProduct  `yaml:"products"`
	Customers []SeedCustomer `yaml:"customers"`
	Coupons   []SeedCoupon   `yaml:"coupons"`
}

type SeedProduct struct {
	Code          string   `yaml:"code"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Category      string   `yaml:"category"`
	Price         float64  `yaml:"price"`
	OriginalPrice *float64 `yaml:"original_price"`
	Discount      *float64 `yaml:"discount"`
	Image         string   `yaml:"image"`
	Stock         *int     `yaml:"stock"`
}

type SeedAddress struct {
	Type      string `yaml:"type"`
	IsDefault bool   `yaml:"default"`
	Street    string `yaml:"street"`
	City      string `yaml:"city"`
	State     string `yaml:"state"`
	Country   string `yaml:"country"`
	PinCode   string `yaml:"pin_code"`
}

type SeedCustomer struct {
	FirstName      string        `yaml:"first_name"`
	LastName       string        `yaml:"last_name"`
	Email          string        `yaml:"email"`
	MobileNumber   string        `yaml:"mobile_number"`
	WhatsAppNumber string        `yaml:"whatsapp_number"`
	Addresses      []SeedAddress `yaml:"addresses"`
}

type SeedCoupon struct {
	Code          string  `yaml:"code"`
	Percent       float64 `yaml:"percent"`
	MinOrderValue float64 `yaml:"min_order"`
	MaxDiscount   float64 `yaml:"max_discount"`
}

// DefaultSeed returns the bundled seed data.
func DefaultSeed() (SeedData, error) {
	return ParseSeed(seedYAML)
}

func ParseSeed(raw []byte) (SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return SeedData{}, fmt.Errorf("parse seed data: %w", err)
	}
	return data, nil
}

// Seed inserts data. Products and coupons already present (by code) are
// left alone; customers are only seeded into an empty table.
func Seed(ctx context.Context, db *gorm.DB, data SeedData) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(data.Products) > 0 {
			rows := make([]models.Product, 0, len(data.Products))
			for _, p := range data.Products {
				rows = append(rows, models.Product{
					Code:          p.Code,
					Name:          p.Name,
					Description:   p.Description,
					Category:      p.Category,
					Price:         p.Price,
					OriginalPrice: p.OriginalPrice,
					Discount:      p.Discount,
					Image:         p.Image,
					Stock:         p.Stock,
				})
			}
			if err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).Create(&rows).Error; err != nil {
				return fmt.Errorf("seed products: %w", err)
			}
		}

		if len(data.Coupons) > 0 {
			rows := make([]models.Coupon, 0, len(data.Coupons))
			for _, c := range data.Coupons {
				rows = append(rows, models.Coupon{
					Code:          strings.ToUpper(c.Code),
					Percent:       c.Percent,
					MinOrderValue: c.MinOrderValue,
					MaxDiscount:   c.MaxDiscount,
					Active:        true,
				})
			}
			if err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).Create(&rows).Error; err != nil {
				return fmt.Errorf("seed coupons: %w", err)
			}
		}

		var existing int64
		if err := tx.Model(&models.Customer{}).Count(&existing).Error; err != nil {
			return fmt.Errorf("count customers: %w", err)
		}
		if existing > 0 {
			return nil
		}
		for _, c := range data.Customers {
			row := models.Customer{
				FirstName:      c.FirstName,
				LastName:       c.LastName,
				Email:          c.Email,
				MobileNumber:   c.MobileNumber,
				MobileDigits:   customers.Digits(c.MobileNumber),
				WhatsAppNumber: c.WhatsAppNumber,
			}
			for _, a := range c.Addresses {
				row.Addresses = append(row.Addresses, models.CustomerAddress{
					Type:      models.AddressType(a.Type),
					IsDefault: a.IsDefault,
					Address: models.Address{
						Street:  a.Street,
						City:    a.City,
						State:   a.State,
						Country: a.Country,
						PinCode: a.PinCode,
					},
				})
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed customer %s: %w", c.Email, err)
			}
		}
		return nil
	})
}
