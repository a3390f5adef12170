package models

import "time"

type AddressType string

const (
	AddressTypeShipping AddressType = "shipping"
	AddressTypeBilling  AddressType = "billing"
)

type Customer struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	FirstName      string `gorm:"not null"`
	LastName       string `gorm:"not null"`
	Email          string `gorm:"index"`
	MobileNumber   string `gorm:"not null"`
	MobileDigits   string `gorm:"index"` // MobileNumber without punctuation, for lookup
	WhatsAppNumber string
	Addresses      []CustomerAddress `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
}

type CustomerAddress struct {
	ID         uint        `gorm:"primaryKey;autoIncrement"`
	CustomerID uint        `gorm:"index"`
	Type       AddressType `gorm:"type:VARCHAR(10);not null"`
	IsDefault  bool
	Address    Address `gorm:"embedded"`
}

// Address is embedded wherever a postal address is stored.
type Address struct {
	Street  string
	City    string
	State   string
	Country string
	PinCode string
}
