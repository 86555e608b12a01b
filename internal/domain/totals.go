package domain

// Totals is the checkout summary derived from a cart snapshot and the applied
// discount. It is recomputed from current state on every read, never cached.
type Totals struct {
	Subtotal    Money
	ShippingFee Money
	Tax         Money
	Discount    Money
	GrandTotal  Money
}
