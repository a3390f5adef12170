package orderform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCalculateSummary_SingleItem(t *testing.T) {
	items := []LineItem{{ID: "a", Price: 200, Quantity: 1, Total: 200}}

	got := CalculateSummary(items, 0, 0, 0, 0)

	want := Summary{Subtotal: 200, Total: 200}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculateSummary_DiscountsAndShipping(t *testing.T) {
	items := []LineItem{
		{ID: "a", Price: 199.99, Quantity: 3},
		{ID: "b", Price: 0.1, Quantity: 2},
	}

	got := CalculateSummary(items, 50, 25.5, 10, 40)

	assert.Equal(t, 600.17, got.Subtotal)
	assert.Equal(t, 85.5, got.Discount)
	assert.Equal(t, 25.5, got.CouponDiscount)
	assert.Equal(t, 40.0, got.ShippingCharges)
	assert.Equal(t, 554.67, got.Total)
}

func TestCalculateSummary_IgnoresStoredTotals(t *testing.T) {
	items := []LineItem{{ID: "a", Price: 100, Quantity: 4, Total: 1}}

	got := CalculateSummary(items, 0, 0, 0, 0)

	assert.Equal(t, 400.0, got.Subtotal)
}

func TestCalculateSummary_NeverNegative(t *testing.T) {
	cases := []struct {
		name                          string
		items                         []LineItem
		total, coupon, bank, shipping float64
	}{
		{"discount exceeds subtotal", []LineItem{{Price: 100, Quantity: 1}}, 500, 0, 0, 0},
		{"discounts exceed subtotal plus shipping", []LineItem{{Price: 100, Quantity: 2}}, 100, 100, 100, 50},
		{"no items but a discount", nil, 0, 10, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateSummary(tc.items, tc.total, tc.coupon, tc.bank, tc.shipping)
			assert.Equal(t, 0.0, got.Total)
		})
	}
}

func TestSubtotal_SumsPriceTimesQuantity(t *testing.T) {
	items := []LineItem{
		{Price: 1399, Quantity: 2},
		{Price: 499, Quantity: 1},
		{Price: 8999, Quantity: 3},
	}

	assert.Equal(t, 1399.0*2+499+8999*3, Subtotal(items))
}

func TestDraftOrder_Summary(t *testing.T) {
	d := NewDraftOrder()
	d.Products = []LineItem{{Price: 1000, Quantity: 2}}
	d.ShippingCharges = 99
	d.CouponDiscount = 200

	got := d.Summary()

	assert.Equal(t, 2000.0, got.Subtotal)
	assert.Equal(t, 200.0, got.Discount)
	assert.Equal(t, 1899.0, got.Total)
}
