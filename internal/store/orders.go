package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/MdAkhlaq657/shophub/internal/domain"
	"github.com/google/uuid"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Orders is the append-only history of finalized carts, newest first. An
// order is immutable once placed except for its status.
type Orders struct {
	orders  []domain.Order
	current string // id of the most recently placed order, for post-checkout display

	now   func() time.Time
	newID func() string
}

func NewOrders() *Orders {
	return &Orders{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return "ORD-" + uuid.NewString() },
	}
}

// Place finalizes a cart snapshot into an order. The lines are copied so
// later cart mutation cannot retroactively alter history. The new order
// starts in processing and becomes the current order.
func (o *Orders) Place(cart domain.CartSnapshot, info domain.ShippingInfo, total domain.Money) (domain.Order, error) {
	if len(cart.Lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	info = info.WithDefaults()
	if err := info.Validate(); err != nil {
		return domain.Order{}, fmt.Errorf("shipping info: %w", err)
	}

	lines := make([]domain.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)

	order := domain.Order{
		ID:           o.newID(),
		Lines:        lines,
		ShippingInfo: info,
		TotalAmount:  total,
		OrderDate:    o.now(),
		Status:       domain.StatusProcessing,
	}

	o.orders = append([]domain.Order{order}, o.orders...)
	o.current = order.ID

	// the caller gets its own copy, like Get and All; the history entry
	// must stay unreachable from outside
	return copyOrder(order), nil
}

// UpdateStatus advances an order through the fulfillment state machine.
func (o *Orders) UpdateStatus(orderID string, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("status[%s] is not valid", status)
	}

	for i, order := range o.orders {
		if order.ID != orderID {
			continue
		}
		if !order.Status.CanTransitionTo(status) {
			return fmt.Errorf("%s -> %s: %w", order.Status, status, ErrInvalidTransition)
		}
		o.orders[i].Status = status
		return nil
	}

	return ErrOrderNotFound
}

func (o *Orders) Get(orderID string) (domain.Order, bool) {
	for _, order := range o.orders {
		if order.ID == orderID {
			return copyOrder(order), true
		}
	}
	return domain.Order{}, false
}

// All returns the history newest-first; the caller owns the copy.
func (o *Orders) All() []domain.Order {
	orders := make([]domain.Order, len(o.orders))
	for i, order := range o.orders {
		orders[i] = copyOrder(order)
	}
	return orders
}

// Current returns the order placed most recently, if it has not been cleared
// since checkout.
func (o *Orders) Current() (domain.Order, bool) {
	if o.current == "" {
		return domain.Order{}, false
	}
	return o.Get(o.current)
}

func (o *Orders) ClearCurrent() {
	o.current = ""
}

func copyOrder(order domain.Order) domain.Order {
	lines := make([]domain.CartLine, len(order.Lines))
	copy(lines, order.Lines)
	order.Lines = lines
	return order
}
