package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog entry. Orders copy what they need at add time, so rows
// here are never touched by the order flow.
type Product struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	Code          string `gorm:"uniqueIndex;not null"`
	Name          string `gorm:"not null"`
	Description   string
	Category      string   `gorm:"index"`
	Price         float64  `gorm:"not null"`
	OriginalPrice *float64 // list price before discount
	Discount      *float64 // percent off OriginalPrice
	Image         string
	Stock         *int // nil when inventory is not tracked
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
