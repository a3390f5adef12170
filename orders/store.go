package orders

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/junaidrashid-git/orderdesk/models"
	"github.com/junaidrashid-git/orderdesk/orderform"
	"github.com/junaidrashid-git/orderdesk/payments"
)

// Store is the gorm-backed order Service plus the admin operations on
// stored orders.
type Store struct {
	db       *gorm.DB
	gateway  payments.Gateway
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

type Option func(*Store)

// WithGateway enables hosted payment pages for payment-link orders.
func WithGateway(g payments.Gateway) Option {
	return func(s *Store) { s.gateway = g }
}

func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func NewStore(db *gorm.DB, opts ...Option) *Store {
	s := &Store{
		db:     db,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Example: 20250908130500-<uuid4>
func (s *Store) generateOrderRef() string {
	return s.now().Format("20060102150405") + "-" + uuid.NewString()
}

func orderNumber(id uint) string {
	return fmt.Sprintf("ORD-%06d", id)
}

// CreateOrder persists the draft as a pending order. Payment-mode side
// effects (payment link, QR) never fail an order that was stored.
func (s *Store) CreateOrder(ctx context.Context, draft orderform.DraftOrder) (Response, error) {
	if err := checkDraft(draft); err != nil {
		return Response{}, err
	}

	order := toOrder(draft)
	order.OrderRef = s.generateOrderRef()
	order.CreatedAt = s.now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		order.OrderNumber = orderNumber(order.ID)
		return tx.Model(&order).Update("order_number", order.OrderNumber).Error
	})
	if err != nil {
		return Response{}, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order created",
		zap.Uint("id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.String("payment_method", order.PaymentMethod),
		zap.Float64("total", order.TotalAmount))

	resp := Response{
		OrderID:     strconv.FormatUint(uint64(order.ID), 10),
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Message:     StatusMessage,
	}

	switch orderform.PaymentMethod(order.PaymentMethod) {
	case orderform.PaymentLink:
		if url, err := s.attachPaymentLink(ctx, &order); err != nil {
			s.logger.Warn("payment link not created", zap.String("order_number", order.OrderNumber), zap.Error(err))
		} else {
			resp.PaymentURL = url
		}
	case orderform.PaymentQR:
		if qr, err := models.LatestQRFile(s.db.WithContext(ctx)); err == nil {
			resp.QRURL = qr.FileURL
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("qr lookup failed", zap.Error(err))
		}
	}

	if s.notifier != nil {
		s.notifier.OrderCreated(order)
	}
	return resp, nil
}

func (s *Store) attachPaymentLink(ctx context.Context, order *models.Order) (string, error) {
	if s.gateway == nil {
		return "", ErrGatewayNotEnabled
	}

	link, err := s.gateway.CreatePaymentLink(ctx, payments.Request{
		CartID:      order.OrderRef,
		Amount:      decimal.NewFromFloat(order.TotalAmount).StringFixed(2),
		Description: "Order " + order.OrderNumber,
		Name:        strings.TrimSpace(order.FirstName + " " + order.LastName),
		Email:       order.Email,
		Phone:       order.MobileNumber,
		Address: payments.Address{
			Line1:    order.Billing.Street,
			City:     order.Billing.City,
			Region:   order.Billing.State,
			Country:  order.Billing.Country,
			Postcode: order.Billing.PinCode,
		},
	})
	if err != nil {
		return "", err
	}

	order.PaymentURL = link.URL
	order.PaymentGatewayRef = link.Ref
	if err := s.db.WithContext(ctx).Model(order).Updates(map[string]interface{}{
		"payment_url":         link.URL,
		"payment_gateway_ref": link.Ref,
	}).Error; err != nil {
		return "", fmt.Errorf("store payment link: %w", err)
	}
	return link.URL, nil
}

// ResendPaymentLink requests a fresh hosted payment page for an unpaid
// payment-link order.
func (s *Store) ResendPaymentLink(ctx context.Context, id uint) (string, error) {
	order, err := s.byID(ctx, id)
	if err != nil {
		return "", err
	}
	if orderform.PaymentMethod(order.PaymentMethod) != orderform.PaymentLink {
		return "", ErrNoPaymentLink
	}
	return s.attachPaymentLink(ctx, &order)
}

// List returns orders newest first.
func (s *Store) List(ctx context.Context) ([]models.Order, error) {
	var rows []models.Order
	if err := s.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return rows, nil
}

// Get finds an order by numeric id, order number or order reference.
func (s *Store) Get(ctx context.Context, key string) (models.Order, error) {
	tx := s.db.WithContext(ctx).Preload("Items")
	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		tx = tx.Where("id = ?", id)
	} else {
		tx = tx.Where("order_number = ? OR order_ref = ?", key, key)
	}

	var order models.Order
	if err := tx.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, fmt.Errorf("get order %s: %w", key, err)
	}
	return order, nil
}

func (s *Store) byID(ctx context.Context, id uint) (models.Order, error) {
	return s.Get(ctx, strconv.FormatUint(uint64(id), 10))
}

func (s *Store) UpdateStatus(ctx context.Context, id uint, status string) error {
	newStatus, err := ParseStatus(status)
	if err != nil {
		return err
	}
	return s.updateColumn(ctx, id, "status", newStatus)
}

func (s *Store) UpdatePaymentStatus(ctx context.Context, id uint, status string) error {
	newStatus, err := ParsePaymentStatus(status)
	if err != nil {
		return err
	}
	return s.updateColumn(ctx, id, "payment_status", newStatus)
}

func (s *Store) updateColumn(ctx context.Context, id uint, column string, value interface{}) error {
	res := s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return fmt.Errorf("update order %d %s: %w", id, column, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkPaid records a successful gateway payment for the order with the
// given reference.
func (s *Store) MarkPaid(ctx context.Context, orderRef, gatewayRef string) error {
	updates := map[string]interface{}{"payment_status": models.PaymentStatusPaid}
	if gatewayRef != "" {
		updates["payment_gateway_ref"] = gatewayRef
	}
	res := s.db.WithContext(ctx).Model(&models.Order{}).Where("order_ref = ?", orderRef).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("mark order %s paid: %w", orderRef, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func toOrder(d orderform.DraftOrder) models.Order {
	summary := d.Summary()

	items := make([]models.OrderItem, 0, len(d.Products))
	for _, p := range d.Products {
		items = append(items, models.OrderItem{
			ProductCode:   p.ProductCode,
			ProductName:   p.ProductName,
			ProductImage:  p.Image,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Discount:      p.Discount,
			Quantity:      p.Quantity,
			Total:         decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity))).InexactFloat64(),
		})
	}

	billing := d.BillingAddress
	if d.CopyBillingToShipping {
		billing = d.ShippingAddress
	}

	method := d.PaymentMode
	if method == "" {
		method = orderform.PaymentCashOnDelivery
	}

	return models.Order{
		FirstName:      strings.TrimSpace(d.FirstName),
		LastName:       strings.TrimSpace(d.LastName),
		Email:          strings.TrimSpace(d.Email),
		MobileNumber:   strings.TrimSpace(d.MobileNumber),
		WhatsAppNumber: strings.TrimSpace(d.WhatsAppNumber),
		Shipping:       toAddress(d.ShippingAddress),
		Billing:        toAddress(billing),
		Items:          items,
		Subtotal:       summary.Subtotal,
		TotalDiscount:  d.TotalDiscount,
		BankDiscount:   d.BankDiscount,
		CouponCode:     strings.ToUpper(strings.TrimSpace(d.CouponCode)),
		CouponDiscount: summary.CouponDiscount,
		ShippingCost:   summary.ShippingCharges,
		TotalAmount:    summary.Total,
		Status:         models.OrderStatusPending,
		PaymentStatus:  models.PaymentStatusPending,
		PaymentMethod:  string(method),
	}
}

func toAddress(a orderform.Address) models.Address {
	return models.Address{
		Street:  a.Address,
		City:    a.City,
		State:   a.State,
		Country: a.Country,
		PinCode: a.PinCode,
	}
}
