package store

import "github.com/MdAkhlaq657/shophub/internal/domain"

const recentlyViewedLimit = 10

// RecentlyViewed keeps the last viewed products most-recent-first.
// Re-viewing a product moves it to the front instead of duplicating it.
type RecentlyViewed struct {
	products []domain.Product
}

func NewRecentlyViewed() *RecentlyViewed {
	return &RecentlyViewed{}
}

func (r *RecentlyViewed) Record(p domain.Product) {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			break
		}
	}

	r.products = append([]domain.Product{p}, r.products...)
	if len(r.products) > recentlyViewedLimit {
		r.products = r.products[:recentlyViewedLimit]
	}
}

func (r *RecentlyViewed) Clear() {
	r.products = nil
}

func (r *RecentlyViewed) Products() []domain.Product {
	products := make([]domain.Product, len(r.products))
	copy(products, r.products)
	return products
}
