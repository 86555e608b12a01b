package domain_test

import (
	"testing"

	"github.com/MdAkhlaq657/shophub/internal/domain"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.OrderStatus
		to   domain.OrderStatus
		want bool
	}{
		{"pending to processing", domain.StatusPending, domain.StatusProcessing, true},
		{"processing to shipped", domain.StatusProcessing, domain.StatusShipped, true},
		{"shipped to delivered", domain.StatusShipped, domain.StatusDelivered, true},
		{"pending to shipped skips a step", domain.StatusPending, domain.StatusShipped, false},
		{"processing back to pending", domain.StatusProcessing, domain.StatusPending, false},
		{"delivered is terminal", domain.StatusDelivered, domain.StatusCancelled, false},
		{"cancelled is terminal", domain.StatusCancelled, domain.StatusProcessing, false},
		{"pending can cancel", domain.StatusPending, domain.StatusCancelled, true},
		{"processing can cancel", domain.StatusProcessing, domain.StatusCancelled, true},
		{"shipped can cancel", domain.StatusShipped, domain.StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestShippingInfo_Validate(t *testing.T) {
	valid := randomShippingInfo()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name      string
		mutate    func(*domain.ShippingInfo)
		wantError string
	}{
		{"missing full name", func(s *domain.ShippingInfo) { s.FullName = "" }, "fullName is empty"},
		{"missing email", func(s *domain.ShippingInfo) { s.Email = "" }, "email is empty"},
		{"missing phone", func(s *domain.ShippingInfo) { s.Phone = "" }, "phone is empty"},
		{"missing address", func(s *domain.ShippingInfo) { s.Address = "" }, "address is empty"},
		{"missing city", func(s *domain.ShippingInfo) { s.City = "" }, "city is empty"},
		{"missing state", func(s *domain.ShippingInfo) { s.State = "" }, "state is empty"},
		{"missing zip code", func(s *domain.ShippingInfo) { s.ZipCode = "" }, "zipCode is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := valid
			tt.mutate(&info)
			require.EqualError(t, info.Validate(), tt.wantError)
		})
	}
}

func TestShippingInfo_WithDefaults(t *testing.T) {
	info := randomShippingInfo()
	info.Country = ""

	assert.Equal(t, "United States", info.WithDefaults().Country)

	info.Country = "Finland"
	assert.Equal(t, "Finland", info.WithDefaults().Country)
}

func randomShippingInfo() domain.ShippingInfo {
	addr := gofakeit.Address()

	return domain.ShippingInfo{
		FullName: gofakeit.Name(),
		Email:    gofakeit.Email(),
		Phone:    gofakeit.Phone(),
		Address:  addr.Street,
		City:     addr.City,
		State:    addr.State,
		ZipCode:  addr.Zip,
		Country:  addr.Country,
	}
}
