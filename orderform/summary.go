package orderform

import "github.com/shopspring/decimal"

type Summary struct {
	Subtotal        float64 `json:"subtotal"`
	Discount        float64 `json:"discount"`
	CouponDiscount  float64 `json:"couponDiscount"`
	ShippingCharges float64 `json:"shippingCharges"`
	Total           float64 `json:"total"`
}

// CalculateSummary derives subtotal, aggregate discount and grand total.
// The total never goes below zero.
func CalculateSummary(items []LineItem, totalDiscount, couponDiscount, bankDiscount, shippingCharges float64) Summary {
	subtotal := subtotalOf(items)
	discount := decimal.NewFromFloat(totalDiscount).
		Add(decimal.NewFromFloat(couponDiscount)).
		Add(decimal.NewFromFloat(bankDiscount))

	total := subtotal.Add(decimal.NewFromFloat(shippingCharges)).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Summary{
		Subtotal:        subtotal.InexactFloat64(),
		Discount:        discount.InexactFloat64(),
		CouponDiscount:  couponDiscount,
		ShippingCharges: shippingCharges,
		Total:           total.InexactFloat64(),
	}
}

// Subtotal is the sum of price × quantity over items.
func Subtotal(items []LineItem) float64 {
	return subtotalOf(items).InexactFloat64()
}

func subtotalOf(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(lineTotal(item.Price, item.Quantity))
	}
	return sum
}

func lineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}
