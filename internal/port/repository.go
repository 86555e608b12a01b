package port

import (
	"context"

	"github.com/MdAkhlaq657/shophub/internal/domain"
)

// OrderRepository durably stores finalized orders. It is an optional
// extension wired by the application shell; the engine itself keeps orders
// session-only.
type OrderRepository interface {
	SaveOrder(ctx context.Context, ownerID string, order domain.Order) error
	GetOrder(ctx context.Context, orderID string) (domain.Order, error)
	ListOrders(ctx context.Context, ownerID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (bool, error)
}

// SearchTermRepository persists recent search terms, the only state the
// storefront keeps across sessions.
type SearchTermRepository interface {
	SaveTerm(ctx context.Context, ownerID, term string) error
	RecentTerms(ctx context.Context, ownerID string, limit int) ([]string, error)
	DeleteTerms(ctx context.Context, ownerID string) (int64, error)
}
