package orders_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/orderdesk/models"
	"github.com/junaidrashid-git/orderdesk/orderform"
	"github.com/junaidrashid-git/orderdesk/orders"
	"github.com/junaidrashid-git/orderdesk/payments"
	"github.com/junaidrashid-git/orderdesk/testsupport"
)

type fakeGateway struct {
	link payments.Link
	err  error
	reqs []payments.Request
}

func (g *fakeGateway) CreatePaymentLink(_ context.Context, req payments.Request) (payments.Link, error) {
	g.reqs = append(g.reqs, req)
	return g.link, g.err
}

type recordingNotifier struct {
	mu     sync.Mutex
	orders []models.Order
}

func (n *recordingNotifier) OrderCreated(o models.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, o)
}

func draft() orderform.DraftOrder {
	d := orderform.NewDraftOrder()
	d.FirstName = "John"
	d.LastName = "Doe"
	d.Email = "john.doe@example.com"
	d.MobileNumber = "+91-9876543210"
	d.ShippingAddress = orderform.Address{Address: "123 Main Street, Apartment 4B", City: "Mumbai", State: "Maharashtra", Country: "India", PinCode: "400001"}
	d.SetCopyBillingToShipping(true)
	d.Products = []orderform.LineItem{
		{ID: "li-1", ProductCode: "PROD001", ProductName: "Sweatshirt", Price: 200, Quantity: 2, Total: 400},
		{ID: "li-2", ProductCode: "PROD003", ProductName: "Canvas School Bag", Price: 100, Quantity: 1, Total: 100},
	}
	d.ShippingCharges = 50
	d.CouponCode = "save10"
	d.CouponDiscount = 50
	return d
}

func TestCreateOrder_RejectsIncompleteDraft(t *testing.T) {
	store := orders.NewStore(testsupport.DB(t))
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*orderform.DraftOrder)
		want   error
	}{
		{"no products", func(d *orderform.DraftOrder) { d.Products = nil }, orders.ErrNoProducts},
		{"no last name", func(d *orderform.DraftOrder) { d.LastName = " " }, orders.ErrCustomerName},
		{"no email", func(d *orderform.DraftOrder) { d.Email = "" }, orders.ErrCustomerContact},
		{"no mobile", func(d *orderform.DraftOrder) { d.MobileNumber = "" }, orders.ErrCustomerContact},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draft()
			tt.mutate(&d)
			_, err := store.CreateOrder(ctx, d)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateOrder_PersistsPendingOrder(t *testing.T) {
	db := testsupport.DB(t)
	notifier := &recordingNotifier{}
	store := orders.NewStore(db, orders.WithNotifier(notifier))
	ctx := context.Background()

	resp, err := store.CreateOrder(ctx, draft())
	require.NoError(t, err)
	assert.Equal(t, orders.Response{
		OrderID:     "1",
		OrderNumber: "ORD-000001",
		Status:      models.OrderStatusPending,
		Message:     "Order created successfully",
	}, resp)

	stored, err := store.Get(ctx, "ORD-000001")
	require.NoError(t, err)
	assert.Equal(t, 500.0, stored.Subtotal)
	assert.Equal(t, 500.0, stored.TotalAmount)
	assert.Equal(t, 50.0, stored.CouponDiscount)
	assert.Equal(t, "SAVE10", stored.CouponCode)
	assert.Equal(t, "cod", stored.PaymentMethod)
	assert.Equal(t, models.PaymentStatusPending, stored.PaymentStatus)
	assert.Equal(t, "400001", stored.Billing.PinCode)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, 400.0, stored.Items[0].Total)
	assert.NotEmpty(t, stored.OrderRef)

	require.Len(t, notifier.orders, 1)
	assert.Equal(t, "ORD-000001", notifier.orders[0].OrderNumber)
}

func TestCreateOrder_PaymentLink(t *testing.T) {
	db := testsupport.DB(t)
	gw := &fakeGateway{link: payments.Link{URL: "https://pay.example.com/p/abc", Ref: "GW123"}}
	store := orders.NewStore(db, orders.WithGateway(gw))
	ctx := context.Background()

	d := draft()
	d.PaymentMode = orderform.PaymentLink
	resp, err := store.CreateOrder(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/p/abc", resp.PaymentURL)

	require.Len(t, gw.reqs, 1)
	assert.Equal(t, "500.00", gw.reqs[0].Amount)
	assert.Equal(t, "John Doe", gw.reqs[0].Name)
	assert.Equal(t, "Mumbai", gw.reqs[0].Address.City)

	stored, err := store.Get(ctx, resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "GW123", stored.PaymentGatewayRef)
	assert.Equal(t, gw.reqs[0].CartID, stored.OrderRef)
}

func TestCreateOrder_GatewayFailureKeepsOrder(t *testing.T) {
	db := testsupport.DB(t)
	store := orders.NewStore(db, orders.WithGateway(&fakeGateway{err: errors.New("gateway down")}))

	d := draft()
	d.PaymentMode = orderform.PaymentLink
	resp, err := store.CreateOrder(context.Background(), d)
	require.NoError(t, err)
	assert.Empty(t, resp.PaymentURL)
	assert.Equal(t, "ORD-000001", resp.OrderNumber)
}

func TestCreateOrder_QRReturnsLatestUpload(t *testing.T) {
	db := testsupport.DB(t)
	store := orders.NewStore(db)

	_, err := models.SaveQRFile(db, "old.png", "/uploads/qr/old.png")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = models.SaveQRFile(db, "new.png", "/uploads/qr/new.png")
	require.NoError(t, err)

	d := draft()
	d.PaymentMode = orderform.PaymentQR
	resp, err := store.CreateOrder(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/qr/new.png", resp.QRURL)
}

func TestValidateCoupon(t *testing.T) {
	db := testsupport.DB(t)
	testsupport.SeedCoupons(t, db)
	store := orders.NewStore(db)

	tests := []struct {
		code  string
		total float64
		want  orders.CouponResult
	}{
		{"SAVE10", 1000, orders.CouponResult{Valid: true, Discount: 100, Message: "Coupon applied! You saved ₹100"}},
		{"save10", 1399, orders.CouponResult{Valid: true, Discount: 139.9, Message: "Coupon applied! You saved ₹139.9"}},
		{"SAVE10", 400, orders.CouponResult{Message: "Minimum order value should be ₹500"}},
		{"SAVE20", 2000, orders.CouponResult{Valid: true, Discount: 400, Message: "Coupon applied! You saved ₹400"}},
		{"SAVE20", 5000, orders.CouponResult{Valid: true, Discount: 500, Message: "Coupon applied! You saved ₹500"}},
		{"WELCOME", 300, orders.CouponResult{Valid: true, Discount: 45, Message: "Coupon applied! You saved ₹45"}},
		{"FREE", 5000, orders.CouponResult{Message: "Invalid coupon code"}},
		{"", 5000, orders.CouponResult{Message: "Invalid coupon code"}},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := store.ValidateCoupon(context.Background(), tt.code, tt.total)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_AdminOperations(t *testing.T) {
	db := testsupport.DB(t)
	store := orders.NewStore(db)
	ctx := context.Background()

	resp, err := store.CreateOrder(ctx, draft())
	require.NoError(t, err)
	_, err = store.CreateOrder(ctx, draft())
	require.NoError(t, err)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ORD-000002", list[0].OrderNumber)

	require.NoError(t, store.UpdateStatus(ctx, 1, "Shipped"))
	assert.ErrorIs(t, store.UpdateStatus(ctx, 1, "lost"), orders.ErrInvalidStatus)
	assert.ErrorIs(t, store.UpdateStatus(ctx, 99, "shipped"), orders.ErrNotFound)
	assert.ErrorIs(t, store.UpdatePaymentStatus(ctx, 1, "maybe"), orders.ErrInvalidPayStatus)

	stored, err := store.Get(ctx, resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, stored.Status)

	require.NoError(t, store.MarkPaid(ctx, stored.OrderRef, "GW9"))
	stored, err = store.Get(ctx, stored.OrderRef)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, stored.PaymentStatus)
	assert.ErrorIs(t, store.MarkPaid(ctx, "nope", ""), orders.ErrNotFound)

	_, err = store.ResendPaymentLink(ctx, 1)
	assert.ErrorIs(t, err, orders.ErrNoPaymentLink)

	require.NoError(t, store.Delete(ctx, 1))
	_, err = store.Get(ctx, "1")
	assert.ErrorIs(t, err, orders.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, 1), orders.ErrNotFound)

	var items int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", 1).Count(&items).Error)
	assert.Zero(t, items)
}

func TestParseStatus(t *testing.T) {
	s, err := orders.ParseStatus(" Ready_To_Ship ")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusReadyToShip, s)

	p, err := orders.ParsePaymentStatus("REFUNDED")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, p)
}
