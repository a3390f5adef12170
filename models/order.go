package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending     OrderStatus = "pending"       // Order placed, awaiting confirmation
	OrderStatusConfirmed   OrderStatus = "confirmed"     // Confirmed by seller
	OrderStatusReadyToShip OrderStatus = "ready_to_ship" // Packed and ready for dispatch
	OrderStatusShipped     OrderStatus = "shipped"       // Out for delivery
	OrderStatusDelivered   OrderStatus = "delivered"     // Customer received the item
	OrderStatusReturned    OrderStatus = "returned"      // Customer returned the item
	OrderStatusCancelled   OrderStatus = "cancelled"     // Cancelled before shipping

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "paid"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "failed"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "refunded" // Money returned to customer
)

type Order struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	OrderNumber       string        `gorm:"index;size:32" json:"order_number"`
	OrderRef          string        `gorm:"uniqueIndex;size:64" json:"order_ref"`
	FirstName         string        `json:"first_name"`
	LastName          string        `json:"last_name"`
	Email             string        `json:"email"`
	MobileNumber      string        `gorm:"index" json:"mobile_number"`
	WhatsAppNumber    string        `json:"whatsapp_number"`
	Shipping          Address       `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	Billing           Address       `gorm:"embedded;embeddedPrefix:billing_" json:"billing_address"`
	Items             []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal          float64       `json:"subtotal"`
	TotalDiscount     float64       `json:"total_discount"`
	BankDiscount      float64       `json:"bank_discount"`
	CouponCode        string        `json:"coupon_code"`
	CouponDiscount    float64       `json:"coupon_discount"`
	ShippingCost      float64       `json:"shipping_cost"`
	TotalAmount       float64       `json:"total_amount"`
	Status            OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus     PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod     string        `json:"payment_method"` // cod, qr, payment-link
	PaymentURL        string        `json:"payment_url,omitempty"`
	PaymentGatewayRef string        `json:"payment_gateway_ref,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	OrderID       uint     `gorm:"index" json:"order_id"`
	ProductCode   string   `json:"product_code"`
	ProductName   string   `json:"product_name"`
	ProductImage  string   `json:"product_image"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Discount      *float64 `json:"discount,omitempty"`
	Quantity      int      `json:"quantity"`
	Total         float64  `json:"total"`
}
