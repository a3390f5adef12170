package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/junaidrashid-git/orderdesk/models"
)

// ValidateCoupon checks code against the active coupons for an order worth
// orderTotal. An unknown code is a normal, invalid result.
func (s *Store) ValidateCoupon(ctx context.Context, code string, orderTotal float64) (CouponResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return CouponResult{Message: "Invalid coupon code"}, nil
	}

	var coupon models.Coupon
	err := s.db.WithContext(ctx).Where("code = ? AND active = ?", code, true).First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return CouponResult{Message: "Invalid coupon code"}, nil
	}
	if err != nil {
		return CouponResult{}, fmt.Errorf("find coupon %s: %w", code, err)
	}

	return couponDiscount(coupon, orderTotal), nil
}

func couponDiscount(c models.Coupon, orderTotal float64) CouponResult {
	total := decimal.NewFromFloat(orderTotal)
	minimum := decimal.NewFromFloat(c.MinOrderValue)
	if total.LessThan(minimum) {
		return CouponResult{Message: "Minimum order value should be ₹" + minimum.String()}
	}

	limit := decimal.NewFromFloat(c.MaxDiscount)
	if !limit.IsPositive() {
		limit = decimal.NewFromInt(DefaultMaxCouponDiscount)
	}
	discount := decimal.Min(total.Mul(decimal.NewFromFloat(c.Percent)).Div(decimal.NewFromInt(100)), limit)

	return CouponResult{
		Valid:    true,
		Discount: discount.InexactFloat64(),
		Message:  "Coupon applied! You saved ₹" + discount.String(),
	}
}
