package store

import "github.com/MdAkhlaq657/shophub/internal/domain"

// MaxComparison bounds the side-by-side comparison set. Inserting beyond the
// bound is rejected, not evicted.
const MaxComparison = 4

type Comparison struct {
	products []domain.Product
}

func NewComparison() *Comparison {
	return &Comparison{}
}

// Add reports whether the product was accepted. Duplicates and inserts past
// the capacity are rejected silently; surfacing the condition to the user is
// the presentation layer's job.
func (c *Comparison) Add(p domain.Product) bool {
	if len(c.products) >= MaxComparison {
		return false
	}
	for _, existing := range c.products {
		if existing.ID == p.ID {
			return false
		}
	}

	c.products = append(c.products, p)
	return true
}

func (c *Comparison) Remove(productID int64) bool {
	for i, p := range c.products {
		if p.ID == productID {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Comparison) Clear() {
	c.products = nil
}

func (c *Comparison) Products() []domain.Product {
	products := make([]domain.Product, len(c.products))
	copy(products, c.products)
	return products
}
