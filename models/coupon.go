package models

import "time"

type Coupon struct {
	ID            uint    `gorm:"primaryKey;autoIncrement"`
	Code          string  `gorm:"uniqueIndex;not null"` // stored upper case
	Percent       float64 `gorm:"not null"`
	MinOrderValue float64
	MaxDiscount   float64
	Active        bool `gorm:"default:true"`
	CreatedAt     time.Time
}
