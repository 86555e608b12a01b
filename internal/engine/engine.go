// Package engine composes the individual stores into one addressable state
// container. The presentation layer mutates state only through commands and
// reads it only through selectors, which return copies; store internals are
// never reachable from outside.
//
// An Engine expects a single logical writer (the UI event loop) and is not
// safe for concurrent use.
package engine

import (
	"log/slog"
	"time"

	"github.com/MdAkhlaq657/shophub/internal/domain"
	"github.com/MdAkhlaq657/shophub/internal/pricing"
	"github.com/MdAkhlaq657/shophub/internal/store"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Engine struct {
	log  *slog.Logger
	unit currency.Unit

	cart          *store.Cart
	wishlist      *store.Wishlist
	comparison    *store.Comparison
	recent        *store.RecentlyViewed
	searches      *store.SearchHistory
	orders        *store.Orders
	notifications *store.Notifications

	coupon *domain.Coupon // applied coupon, nil when none
}

type Option func(*Engine)

func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

func WithCurrency(unit currency.Unit) Option {
	return func(e *Engine) { e.unit = unit }
}

// New builds a fresh engine with empty stores and the storefront's seeded
// welcome notifications. Each call returns an independent instance; there is
// no shared singleton.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:  slog.New(slog.DiscardHandler),
		unit: currency.USD,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.cart = store.NewCart(e.unit)
	e.wishlist = store.NewWishlist()
	e.comparison = store.NewComparison()
	e.recent = store.NewRecentlyViewed()
	e.searches = store.NewSearchHistory()
	e.orders = store.NewOrders()
	e.notifications = store.NewNotifications()

	// seeded feed matches the storefront's initial state: the flash-sale
	// entry is an hour older than the welcome entry
	now := time.Now().UTC()
	e.notifications.PostAt("Flash Sale Alert! ⚡",
		"Up to 50% off on selected items. Limited time only!",
		domain.NoticeWarning, "/products", now.Add(-time.Hour))
	e.notifications.PostAt("Welcome to ShopHub Pro! 🎉",
		"Explore our amazing collection of products",
		domain.NoticeSuccess, "", now)

	return e
}

// --- cart commands ---

func (e *Engine) AddToCart(p domain.Product) {
	e.cart.Add(p)
	e.log.Debug("added to cart", "productID", p.ID)
}

func (e *Engine) RemoveFromCart(productID int64) {
	e.cart.Remove(productID)
}

// UpdateQuantity reports whether the quantity was applied; requests below 1
// are rejected and leave the cart untouched.
func (e *Engine) UpdateQuantity(productID int64, quantity int) bool {
	applied := e.cart.SetQuantity(productID, quantity)
	if !applied {
		e.log.Warn("quantity update rejected", "productID", productID, "quantity", quantity)
	}
	return applied
}

func (e *Engine) ClearCart() {
	e.cart.Clear()
}

// --- coupon commands ---

func (e *Engine) ApplyCoupon(code string) (domain.Coupon, error) {
	coupon, err := pricing.LookupCoupon(code)
	if err != nil {
		e.log.Warn("coupon rejected", "code", code)
		return domain.Coupon{}, err
	}

	e.coupon = &coupon
	return coupon, nil
}

// RemoveCoupon resets the discount to zero.
func (e *Engine) RemoveCoupon() {
	e.coupon = nil
}

// --- wishlist commands ---

func (e *Engine) AddToWishlist(p domain.Product) { e.wishlist.Add(p) }
func (e *Engine) RemoveFromWishlist(id int64) { e.wishlist.Remove(id) }
func (e *Engine) ClearWishlist() { e.wishlist.Clear() }

// --- comparison commands ---

func (e *Engine) AddToComparison(p domain.Product) bool { return e.comparison.Add(p) }
func (e *Engine) RemoveFromComparison(id int64) { e.comparison.Remove(id) }
func (e *Engine) ClearComparison() { e.comparison.Clear() }

// --- browsing history commands ---

func (e *Engine) RecordRecentlyViewed(p domain.Product) { e.recent.Record(p) }
func (e *Engine) ClearRecentlyViewed() { e.recent.Clear() }
func (e *Engine) RecordSearch(term string) { e.searches.Record(term) }
func (e *Engine) ClearSearches() { e.searches.Clear() }

// --- checkout ---

// PlaceOrder finalizes the current cart: the grand total is derived through
// the pricing calculator, the cart lines are snapshotted into an immutable
// order, and on success the cart and any applied coupon are cleared and a
// confirmation notification is posted.
func (e *Engine) PlaceOrder(info domain.ShippingInfo) (domain.Order, error) {
	cart := e.cart.Snapshot()
	totals := pricing.Totals(cart, e.discountAmount())

	order, err := e.orders.Place(cart, info, totals.GrandTotal)
	if err != nil {
		e.log.Warn("order rejected", "error", err)
		return domain.Order{}, err
	}

	e.cart.Clear()
	e.coupon = nil
	e.notifications.Post("Order placed successfully!",
		"Your order "+order.ID+" is being processed.",
		domain.NoticeSuccess, "/orders")

	e.log.Info("order placed", "orderID", order.ID, "total", order.TotalAmount.Amount.String())
	return order, nil
}

func (e *Engine) UpdateOrderStatus(orderID string, status domain.OrderStatus) error {
	if err := e.orders.UpdateStatus(orderID, status); err != nil {
		e.log.Warn("status update rejected", "orderID", orderID, "status", string(status), "error", err)
		return err
	}
	return nil
}

func (e *Engine) ClearCurrentOrder() {
	e.orders.ClearCurrent()
}

// --- notification commands ---

func (e *Engine) PostNotification(title, message string, kind domain.NotificationKind, link string) domain.Notification {
	return e.notifications.Post(title, message, kind, link)
}

func (e *Engine) MarkNotificationRead(id string) { e.notifications.MarkRead(id) }
func (e *Engine) MarkAllNotificationsRead() { e.notifications.MarkAllRead() }
func (e *Engine) DeleteNotification(id string) { e.notifications.Delete(id) }
func (e *Engine) ClearNotifications() { e.notifications.ClearAll() }

// --- selectors ---

func (e *Engine) Cart() domain.CartSnapshot {
	return e.cart.Snapshot()
}

// Totals recomputes the checkout summary from the current cart and applied
// coupon on every call.
func (e *Engine) Totals() domain.Totals {
	return pricing.Totals(e.cart.Snapshot(), e.discountAmount())
}

func (e *Engine) AppliedCoupon() (domain.Coupon, bool) {
	if e.coupon == nil {
		return domain.Coupon{}, false
	}
	return *e.coupon, true
}

func (e *Engine) Wishlist() []domain.Product { return e.wishlist.Products() }
func (e *Engine) InWishlist(id int64) bool { return e.wishlist.Contains(id) }
func (e *Engine) Comparison() []domain.Product { return e.comparison.Products() }
func (e *Engine) RecentlyViewed() []domain.Product { return e.recent.Products() }
func (e *Engine) RecentSearches() []string { return e.searches.Terms() }
func (e *Engine) Orders() []domain.Order { return e.orders.All() }
func (e *Engine) Order(id string) (domain.Order, bool) { return e.orders.Get(id) }
func (e *Engine) CurrentOrder() (domain.Order, bool) { return e.orders.Current() }
func (e *Engine) Notifications() []domain.Notification { return e.notifications.All() }
func (e *Engine) UnreadNotifications() int { return e.notifications.Unread() }

func (e *Engine) discountAmount() decimal.Decimal {
	if e.coupon == nil {
		return decimal.Zero
	}
	return e.coupon.Discount
}
