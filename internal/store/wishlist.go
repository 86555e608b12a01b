package store

import "github.com/MdAkhlaq657/shophub/internal/domain"

// Wishlist is a set of distinct products with toggleable membership.
type Wishlist struct {
	items map[int64]domain.Product
	order []int64
}

func NewWishlist() *Wishlist {
	return &Wishlist{items: make(map[int64]domain.Product)}
}

// Add is idempotent: re-adding a wishlisted product is a silent no-op.
func (w *Wishlist) Add(p domain.Product) {
	if _, ok := w.items[p.ID]; ok {
		return
	}

	w.items[p.ID] = p
	w.order = append(w.order, p.ID)
}

func (w *Wishlist) Remove(productID int64) bool {
	if _, ok := w.items[productID]; !ok {
		return false
	}

	delete(w.items, productID)
	for i, id := range w.order {
		if id == productID {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

func (w *Wishlist) Clear() {
	w.items = make(map[int64]domain.Product)
	w.order = nil
}

func (w *Wishlist) Contains(productID int64) bool {
	_, ok := w.items[productID]
	return ok
}

func (w *Wishlist) Products() []domain.Product {
	products := make([]domain.Product, 0, len(w.order))
	for _, id := range w.order {
		products = append(products, w.items[id])
	}
	return products
}
