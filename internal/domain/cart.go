package domain

// CartLine pairs a product with its quantity. A cart holds exactly one line
// per product id; Quantity never drops below 1, removal is a separate
// operation.
type CartLine struct {
	Product  Product
	Quantity int
}

// Subtotal is the line price multiplied by its quantity.
func (l CartLine) Subtotal() Money {
	return l.Product.Price.MulInt(int64(l.Quantity))
}

// CartSnapshot is an immutable read of the cart at a point in time.
// TotalQuantity and TotalPrice are derived from Lines on every read, so they
// can never drift from the lines they summarize.
type CartSnapshot struct {
	Lines         []CartLine
	TotalQuantity int
	TotalPrice    Money
}
