package pricing

import (
	"errors"
	"strings"

	"github.com/MdAkhlaq657/shophub/internal/domain"
	"github.com/shopspring/decimal"
)

var ErrUnknownCoupon = errors.New("unknown coupon code")

// The registry is fixed; codes match the storefront's published promotions.
// Percentage-tagged coupons still resolve to a flat currency amount, the tag
// is informational only.
var coupons = map[string]domain.Coupon{
	"SAVE10": {Code: "SAVE10", Discount: decimal.NewFromInt(10), Type: domain.CouponPercentage},
	"SAVE20": {Code: "SAVE20", Discount: decimal.NewFromInt(20), Type: domain.CouponPercentage},
	"FLAT50": {Code: "FLAT50", Discount: decimal.NewFromInt(50), Type: domain.CouponFixed},
}

// LookupCoupon resolves a code case-insensitively against the fixed registry.
// Unknown codes yield ErrUnknownCoupon; this is a rejected command, not a
// fatal condition.
func LookupCoupon(code string) (domain.Coupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	coupon, ok := coupons[normalized]
	if !ok {
		return domain.Coupon{}, ErrUnknownCoupon
	}

	return coupon, nil
}
