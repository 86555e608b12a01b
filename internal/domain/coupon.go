package domain

import "github.com/shopspring/decimal"

type CouponType string

const (
	CouponPercentage CouponType = "percentage"
	CouponFixed      CouponType = "fixed"
)

// Coupon is a named discount rule resolved from a fixed registry by code.
// Type is carried for display; the calculator applies Discount as a flat
// currency amount either way, matching the storefront it replaces.
type Coupon struct {
	Code     string
	Discount decimal.Decimal
	Type     CouponType
}
