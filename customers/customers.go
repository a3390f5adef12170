// Package customers is the customer directory used to prefill the order form.
package customers

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound      = errors.New("customer not found")
	ErrInvalidRecord = errors.New("customer record is incomplete")
)

type AddressType string

const (
	AddressShipping AddressType = "shipping"
	AddressBilling  AddressType = "billing"
)

type Address struct {
	ID        string      `json:"id"`
	Type      AddressType `json:"type"`
	IsDefault bool        `json:"isDefault"`
	Address   string      `json:"address"`
	City      string      `json:"city,omitempty"`
	State     string      `json:"state,omitempty"`
	Country   string      `json:"country,omitempty"`
	PinCode   string      `json:"pinCode,omitempty"`
}

type Customer struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	MobileNumber   string    `json:"mobileNumber"`
	WhatsAppNumber string    `json:"whatsappNumber,omitempty"`
	Addresses      []Address `json:"addresses"`
}

// DefaultAddress returns the customer's default address of the given type.
func (c Customer) DefaultAddress(t AddressType) (Address, bool) {
	for _, a := range c.Addresses {
		if a.Type == t && a.IsDefault {
			return a, true
		}
	}
	return Address{}, false
}

type Directory interface {
	// SearchByMobile returns nil without error when nobody matches.
	SearchByMobile(ctx context.Context, number string) (*Customer, error)
	Search(ctx context.Context, query string) ([]Customer, error)
	Create(ctx context.Context, c Customer) (Customer, error)
}

// Digits strips everything but decimal digits from a phone number.
func Digits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
