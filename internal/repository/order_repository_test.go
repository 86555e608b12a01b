package repository_test

import (
	"testing"
	"time"

	"github.com/MdAkhlaq657/shophub/internal/domain"
	"github.com/MdAkhlaq657/shophub/internal/port"
	"github.com/MdAkhlaq657/shophub/internal/repository"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

type orderRepositorySuite struct {
	suite.Suite

	repo port.OrderRepository
	pool *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestOrderRepositorySuite(t *testing.T) {
	suite.Run(t, new(orderRepositorySuite))
}

// before all tests in the suite
func (suite *orderRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo = repository.NewOrders(suite.pool)
}

// after all tests in the suite
func (suite *orderRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *orderRepositorySuite) TestSaveOrder() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		ownerID   string
		order     domain.Order
		wantError string
	}{
		{
			name:    "save order with lines: ok",
			ownerID: gofakeit.UUID(),
			order:   randomOrder(2),
		},
		{
			name:      "save order with empty owner ID: error",
			ownerID:   "",
			order:     randomOrder(1),
			wantError: "ownerID is empty",
		},
		{
			name:      "save order with empty order ID: error",
			ownerID:   gofakeit.UUID(),
			order:     domain.Order{},
			wantError: "order ID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.repo.SaveOrder(ctx, tt.ownerID, tt.order)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			// Verify the round trip
			stored, err := suite.repo.GetOrder(ctx, tt.order.ID)
			require.NoError(t, err)

			assertOrder(t, tt.order, stored)
		})
	}
}

func (suite *orderRepositorySuite) TestGetOrder() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	_, err := suite.repo.GetOrder(ctx, "ORD-missing")
	require.ErrorIs(t, err, repository.ErrOrderNotFound)

	_, err = suite.repo.GetOrder(ctx, "")
	require.EqualError(t, err, "orderID is empty")
}

func (suite *orderRepositorySuite) TestListOrders() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()

	older := randomOrder(1)
	older.OrderDate = time.Now().UTC().Add(-time.Hour)
	newer := randomOrder(2)

	require.NoError(t, suite.repo.SaveOrder(ctx, ownerID, older))
	require.NoError(t, suite.repo.SaveOrder(ctx, ownerID, newer))
	require.NoError(t, suite.repo.SaveOrder(ctx, gofakeit.UUID(), randomOrder(1)))

	orders, err := suite.repo.ListOrders(ctx, ownerID)
	require.NoError(t, err)

	// newest first, other owners excluded
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}

func (suite *orderRepositorySuite) TestUpdateStatus() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	order := randomOrder(1)
	require.NoError(t, suite.repo.SaveOrder(ctx, gofakeit.UUID(), order))

	updated, err := suite.repo.UpdateStatus(ctx, order.ID, domain.StatusShipped)
	require.NoError(t, err)
	assert.True(t, updated)

	stored, err := suite.repo.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, stored.Status)

	updated, err = suite.repo.UpdateStatus(ctx, "ORD-missing", domain.StatusShipped)
	require.NoError(t, err)
	assert.False(t, updated)

	_, err = suite.repo.UpdateStatus(ctx, order.ID, domain.OrderStatus("bogus"))
	require.EqualError(t, err, "status[bogus] is not valid")
}

func (suite *orderRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE orders CASCADE")
	suite.NoError(err)
}

func randomOrder(lineCount int) domain.Order {
	lines := make([]domain.CartLine, 0, lineCount)
	total := domain.Money{Amount: decimal.Zero, Currency: currency.USD}

	for i := 0; i < lineCount; i++ {
		line := domain.CartLine{
			Product:  randomProduct(int64(i + 1)),
			Quantity: gofakeit.Number(1, 5),
		}
		lines = append(lines, line)
		total = total.Add(line.Subtotal())
	}

	addr := gofakeit.Address()

	return domain.Order{
		ID:    "ORD-" + uuid.NewString(),
		Lines: lines,
		ShippingInfo: domain.ShippingInfo{
			FullName: gofakeit.Name(),
			Email:    gofakeit.Email(),
			Phone:    gofakeit.Phone(),
			Address:  addr.Street,
			City:     addr.City,
			State:    addr.State,
			ZipCode:  addr.Zip,
			Country:  addr.Country,
		},
		TotalAmount: total,
		OrderDate:   time.Now().UTC(),
		Status:      domain.StatusProcessing,
	}
}

func randomProduct(id int64) domain.Product {
	return domain.Product{
		ID:          id,
		Title:       gofakeit.ProductName(),
		Price:       domain.Money{Amount: decimal.NewFromFloat(gofakeit.Price(1, 100)), Currency: currency.USD},
		Description: gofakeit.Sentence(8),
		Category:    gofakeit.ProductCategory(),
		Image:       gofakeit.URL(),
		Rating: domain.Rating{
			Rate:  gofakeit.Float64Range(1, 5),
			Count: gofakeit.Number(0, 500),
		},
	}
}

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})
	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	// timestamptz keeps microseconds, time.Now keeps nanoseconds
	opts := cmp.Options{
		cmpopts.EquateApproxTime(time.Millisecond),
		currencyComparer,
		decimalComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}
