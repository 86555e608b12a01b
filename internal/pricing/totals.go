package pricing

import (
	"github.com/MdAkhlaq657/shophub/internal/domain"
	"github.com/shopspring/decimal"
)

// Fixed storefront constants; there is no configuration surface for them.
var (
	taxRate          = decimal.NewFromFloat(0.10)
	flatShippingFee  = decimal.NewFromFloat(5.99)
	freeShippingOver = decimal.NewFromInt(50)
)

// Totals derives the checkout summary from a cart snapshot and a flat
// discount amount. It is a pure function: identical inputs always produce
// identical outputs, so callers may invoke it on every read.
//
// The discount is clamped to the payable amount (subtotal + tax + shipping),
// so the grand total never goes negative.
func Totals(cart domain.CartSnapshot, discount decimal.Decimal) domain.Totals {
	unit := cart.TotalPrice.Currency
	subtotal := cart.TotalPrice.Amount

	shipping := flatShippingFee
	if subtotal.GreaterThan(freeShippingOver) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(taxRate)

	payable := subtotal.Add(tax).Add(shipping)
	if discount.GreaterThan(payable) {
		discount = payable
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	return domain.Totals{
		Subtotal:    domain.Money{Amount: subtotal, Currency: unit},
		ShippingFee: domain.Money{Amount: shipping, Currency: unit},
		Tax:         domain.Money{Amount: tax, Currency: unit},
		Discount:    domain.Money{Amount: discount, Currency: unit},
		GrandTotal:  domain.Money{Amount: payable.Sub(discount), Currency: unit},
	}
}
