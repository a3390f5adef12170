package customers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/junaidrashid-git/orderdesk/models"
)

// Store is the gorm-backed Directory.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SearchByMobile(ctx context.Context, number string) (*Customer, error) {
	digits := Digits(number)
	if digits == "" {
		return nil, nil
	}

	var row models.Customer
	err := s.db.WithContext(ctx).
		Preload("Addresses").
		Where("mobile_digits LIKE ?", "%"+digits+"%").
		Order("id").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("search customer by mobile: %w", err)
	}
	c := fromModel(row)
	return &c, nil
}

// Search matches names and email case-insensitively, and mobile numbers by
// their digits.
func (s *Store) Search(ctx context.Context, query string) ([]Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Customer{}, nil
	}

	like := models.ContainsPattern(strings.ToLower(query))
	tx := s.db.WithContext(ctx).Preload("Addresses")
	if digits := Digits(query); digits != "" {
		tx = tx.Where("LOWER(first_name) LIKE ? ESCAPE '!' OR LOWER(last_name) LIKE ? ESCAPE '!' OR LOWER(email) LIKE ? ESCAPE '!' OR mobile_digits LIKE ?",
			like, like, like, "%"+digits+"%")
	} else {
		tx = tx.Where("LOWER(first_name) LIKE ? ESCAPE '!' OR LOWER(last_name) LIKE ? ESCAPE '!' OR LOWER(email) LIKE ? ESCAPE '!'", like, like, like)
	}

	var rows []models.Customer
	if err := tx.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}

	out := make([]Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromModel(row))
	}
	return out, nil
}

func (s *Store) Create(ctx context.Context, c Customer) (Customer, error) {
	if strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "" || Digits(c.MobileNumber) == "" {
		return Customer{}, ErrInvalidRecord
	}

	row := toModel(c)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return fromModel(row), nil
}

func toModel(c Customer) models.Customer {
	row := models.Customer{
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		MobileNumber:   c.MobileNumber,
		MobileDigits:   Digits(c.MobileNumber),
		WhatsAppNumber: c.WhatsAppNumber,
	}
	for _, a := range c.Addresses {
		row.Addresses = append(row.Addresses, models.CustomerAddress{
			Type:      models.AddressType(a.Type),
			IsDefault: a.IsDefault,
			Address: models.Address{
				Street:  a.Address,
				City:    a.City,
				State:   a.State,
				Country: a.Country,
				PinCode: a.PinCode,
			},
		})
	}
	return row
}

func fromModel(row models.Customer) Customer {
	c := Customer{
		ID:             strconv.FormatUint(uint64(row.ID), 10),
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		Email:          row.Email,
		MobileNumber:   row.MobileNumber,
		WhatsAppNumber: row.WhatsAppNumber,
		Addresses:      make([]Address, 0, len(row.Addresses)),
	}
	for _, a := range row.Addresses {
		c.Addresses = append(c.Addresses, Address{
			ID:        strconv.FormatUint(uint64(a.ID), 10),
			Type:      AddressType(a.Type),
			IsDefault: a.IsDefault,
			Address:   a.Address.Street,
			City:      a.Address.City,
			State:     a.Address.State,
			Country:   a.Address.Country,
			PinCode:   a.Address.PinCode,
		})
	}
	return c
}
