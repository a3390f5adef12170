// Package testsupport opens throwaway databases for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/junaidrashid-git/orderdesk/models"
)

// DB returns a migrated sqlite database living in the test's temp dir.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "orderdesk.db")
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// Products are the catalog fixtures shared by tests, in insertion order.
func Products() []models.Product {
	return []models.Product{
		{Code: "PROD001", Name: "Men Regular Fit Solid Hooded Neck Sweatshirt", Category: "Clothing", Price: 200, OriginalPrice: floatPtr(1000), Discount: floatPtr(70), Stock: intPtr(50), Image: "/images/products/sweatshirt.jpg"},
		{Code: "PROD002", Name: "Skin Lightening Face Wash", Category: "Beauty", Price: 1399, OriginalPrice: floatPtr(7000), Discount: floatPtr(80), Stock: intPtr(30), Image: "/images/products/face-wash.jpg"},
		{Code: "PROD003", Name: "Canvas School Bag", Category: "Bags", Price: 100, OriginalPrice: floatPtr(150), Discount: floatPtr(50), Stock: intPtr(25), Image: "/images/products/school-bag.jpg"},
		{Code: "PROD004", Name: "Wireless Headphones", Category: "Electronics", Price: 2999, OriginalPrice: floatPtr(4999), Discount: floatPtr(40), Stock: intPtr(15)},
		{Code: "PROD005", Name: "Smart Watch", Category: "Electronics", Price: 8999, OriginalPrice: floatPtr(12999), Discount: floatPtr(30), Stock: intPtr(0)},
	}
}

// SeedProducts inserts Products and returns them with ids assigned.
func SeedProducts(t *testing.T, db *gorm.DB) []models.Product {
	t.Helper()
	rows := Products()
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed products: %v", err)
	}
	return rows
}

// SeedCoupons inserts the standard coupon set.
func SeedCoupons(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []models.Coupon{
		{Code: "SAVE10", Percent: 10, MinOrderValue: 500, MaxDiscount: 500, Active: true},
		{Code: "SAVE20", Percent: 20, MinOrderValue: 1000, MaxDiscount: 500, Active: true},
		{Code: "WELCOME", Percent: 15, MinOrderValue: 300, MaxDiscount: 500, Active: true},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed coupons: %v", err)
	}
}
