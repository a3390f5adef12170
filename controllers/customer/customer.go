package customerControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/orderdesk/customers"
)

// -------- Request Structs --------

type AddressRequest struct {
	Type      string `json:"type" binding:"required,oneof=shipping billing"`
	IsDefault bool   `json:"isDefault"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	PinCode   string `json:"pinCode" binding:"omitempty,len=6,numeric"`
}

type CreateCustomerRequest struct {
	FirstName      string           `json:"firstName" binding:"required"`
	LastName       string           `json:"lastName" binding:"required"`
	Email          string           `json:"email" binding:"omitempty,email"`
	MobileNumber   string           `json:"mobileNumber" binding:"required"`
	WhatsAppNumber string           `json:"whatsappNumber"`
	Addresses      []AddressRequest `json:"addresses" binding:"dive"`
}

// GET /admin/customers?q=
func SearchCustomers(directory customers.Directory, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := directory.Search(c.Request.Context(), c.Query("q"))
		if err != nil {
			logger.Error("customer search failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search customers"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// POST /admin/customers
func CreateCustomer(directory customers.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := customers.Customer{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			MobileNumber:   req.MobileNumber,
			WhatsAppNumber: req.WhatsAppNumber,
		}
		for _, a := range req.Addresses {
			in.Addresses = append(in.Addresses, customers.Address{
				Type:      customers.AddressType(a.Type),
				IsDefault: a.IsDefault,
				Address:   a.Address,
				City:      a.City,
				State:     a.State,
				Country:   a.Country,
				PinCode:   a.PinCode,
			})
		}

		created, err := directory.Create(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, customers.ErrInvalidRecord) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer"})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
