package store

import (
	"github.com/MdAkhlaq657/shophub/internal/domain"
	"golang.org/x/text/currency"
)

// Cart owns the purchasable line items. Lines are keyed by product id, so a
// duplicate line for the same product is impossible by construction; a slice
// of ids preserves insertion order for snapshots.
type Cart struct {
	unit  currency.Unit
	lines map[int64]domain.CartLine
	order []int64
}

func NewCart(unit currency.Unit) *Cart {
	return &Cart{
		unit:  unit,
		lines: make(map[int64]domain.CartLine),
	}
}

// Add merges by product id: an existing line gains quantity 1, otherwise a
// new line with quantity 1 is appended. Malformed products are the catalog's
// responsibility and are not validated here.
func (c *Cart) Add(p domain.Product) {
	if line, ok := c.lines[p.ID]; ok {
		line.Quantity++
		c.lines[p.ID] = line
		return
	}

	c.lines[p.ID] = domain.CartLine{Product: p, Quantity: 1}
	c.order = append(c.order, p.ID)
}

// Remove deletes the line if present and reports whether it existed. Removing
// an absent line is a no-op, not an error.
func (c *Cart) Remove(productID int64) bool {
	if _, ok := c.lines[productID]; !ok {
		return false
	}

	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// SetQuantity sets the line quantity and reports whether the change was
// applied. Quantities below 1 are rejected silently; callers wanting deletion
// route to Remove instead. This is a policy choice carried over from the
// storefront, not a limitation.
func (c *Cart) SetQuantity(productID int64, quantity int) bool {
	if quantity < 1 {
		return false
	}

	line, ok := c.lines[productID]
	if !ok {
		return false
	}

	line.Quantity = quantity
	c.lines[productID] = line
	return true
}

func (c *Cart) Clear() {
	c.lines = make(map[int64]domain.CartLine)
	c.order = nil
}

// Snapshot copies the lines out in insertion order and derives the totals
// from them. The caller owns the returned slice.
func (c *Cart) Snapshot() domain.CartSnapshot {
	lines := make([]domain.CartLine, 0, len(c.order))
	totalQuantity := 0
	totalPrice := domain.Zero(c.unit)

	for _, id := range c.order {
		line := c.lines[id]
		lines = append(lines, line)
		totalQuantity += line.Quantity
		totalPrice = totalPrice.Add(line.Subtotal())
	}

	return domain.CartSnapshot{
		Lines:         lines,
		TotalQuantity: totalQuantity,
		TotalPrice:    totalPrice,
	}
}
