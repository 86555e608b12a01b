package domain

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses accept no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo enforces the fulfillment ordering
// pending -> processing -> shipped -> delivered, with cancellation allowed
// from any non-terminal status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}

	switch s {
	case StatusPending:
		return next == StatusProcessing
	case StatusProcessing:
		return next == StatusShipped
	case StatusShipped:
		return next == StatusDelivered
	}
	return false
}

// Order is a finalized cart. Lines are a deep snapshot taken at checkout, so
// later cart mutation cannot alter history. Only Status may change after
// creation.
type Order struct {
	ID           string
	Lines        []CartLine
	ShippingInfo ShippingInfo
	TotalAmount  Money
	OrderDate    time.Time
	Status       OrderStatus
}

// ShippingInfo holds the postal and contact fields required to place an
// order. Every field is required except Country, which defaults.
type ShippingInfo struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	City     string
	State    string
	ZipCode  string
	Country  string
}

const defaultCountry = "United States"

func (s ShippingInfo) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"fullName", s.FullName},
		{"email", s.Email},
		{"phone", s.Phone},
		{"address", s.Address},
		{"city", s.City},
		{"state", s.State},
		{"zipCode", s.ZipCode},
	}

	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%s is empty", f.name)
		}
	}

	return nil
}

// WithDefaults fills the Country field when the caller left it blank.
func (s ShippingInfo) WithDefaults() ShippingInfo {
	if s.Country == "" {
		s.Country = defaultCountry
	}
	return s
}
