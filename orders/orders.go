// Package orders turns a submitted draft into a persisted order and answers
// coupon checks for the form.
package orders

import (
	"context"
	"errors"
	"strings"

	"github.com/junaidrashid-git/orderdesk/models"
	"github.com/junaidrashid-git/orderdesk/orderform"
)

var (
	ErrNoProducts        = errors.New("Order must contain at least one product")
	ErrCustomerName      = errors.New("Customer name is required")
	ErrCustomerContact   = errors.New("Customer contact information is required")
	ErrNotFound          = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidPayStatus  = errors.New("invalid payment status")
	ErrNoPaymentLink     = errors.New("order is not paid by payment link")
	ErrGatewayNotEnabled = errors.New("payment gateway is not configured")
)

const (
	StatusMessage = "Order created successfully"

	// DefaultMaxCouponDiscount caps a coupon whose own cap is unset.
	DefaultMaxCouponDiscount = 500
)

// Response is what the form shows after a successful submission.
type Response struct {
	OrderID     string             `json:"orderId"`
	OrderNumber string             `json:"orderNumber"`
	Status      models.OrderStatus `json:"status"`
	Message     string             `json:"message"`
	PaymentURL  string             `json:"paymentUrl,omitempty"`
	QRURL       string             `json:"qrUrl,omitempty"`
}

type CouponResult struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount"`
	Message  string  `json:"message"`
}

type Service interface {
	CreateOrder(ctx context.Context, draft orderform.DraftOrder) (Response, error)
	ValidateCoupon(ctx context.Context, code string, orderTotal float64) (CouponResult, error)
}

// Notifier is told about every order after it is committed.
type Notifier interface {
	OrderCreated(order models.Order)
}

// ParseStatus maps user input to an OrderStatus.
func ParseStatus(status string) (models.OrderStatus, error) {
	switch s := models.OrderStatus(strings.ToLower(strings.TrimSpace(status))); s {
	case models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusReadyToShip,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusReturned,
		models.OrderStatusCancelled:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}

func ParsePaymentStatus(status string) (models.PaymentStatus, error) {
	switch s := models.PaymentStatus(strings.ToLower(strings.TrimSpace(status))); s {
	case models.PaymentStatusPending,
		models.PaymentStatusPaid,
		models.PaymentStatusFailed,
		models.PaymentStatusRefunded:
		return s, nil
	default:
		return "", ErrInvalidPayStatus
	}
}

// checkDraft applies the order service's own acceptance rules, independent
// of the form's validation.
func checkDraft(d orderform.DraftOrder) error {
	if len(d.Products) == 0 {
		return ErrNoProducts
	}
	if strings.TrimSpace(d.FirstName) == "" || strings.TrimSpace(d.LastName) == "" {
		return ErrCustomerName
	}
	if strings.TrimSpace(d.Email) == "" || strings.TrimSpace(d.MobileNumber) == "" {
		return ErrCustomerContact
	}
	return nil
}
