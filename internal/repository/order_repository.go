package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/MdAkhlaq657/shophub/internal/domain"
	"github.com/MdAkhlaq657/shophub/internal/port"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/currency"
)

var ErrOrderNotFound = errors.New("order not found")

type orderRepository struct {
	pool *pgxpool.Pool
}

func NewOrders(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) SaveOrder(ctx context.Context, ownerID string, order domain.Order) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}
	if order.ID == "" {
		return fmt.Errorf("order ID is empty")
	}

	_, err := withTx(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		var zero struct{}

		info := order.ShippingInfo
		_, err := tx.Exec(ctx, `
			INSERT INTO orders (id, owner_id, full_name, email, phone, address, city, state, zip_code, country,
			                    total_amount, total_currency, status, order_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			order.ID, ownerID, info.FullName, info.Email, info.Phone, info.Address, info.City,
			info.State, info.ZipCode, info.Country,
			order.TotalAmount.Amount, order.TotalAmount.Currency.String(),
			string(order.Status), order.OrderDate)
		if err != nil {
			return zero, fmt.Errorf("insert order: %w", err)
		}

		for _, line := range order.Lines {
			p := line.Product
			_, err := tx.Exec(ctx, `
				INSERT INTO order_lines (order_id, product_id, title, description, category, image,
				                         rating_rate, rating_count, price_amount, price_currency, quantity)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
				order.ID, p.ID, p.Title, p.Description, p.Category, p.Image,
				p.Rating.Rate, p.Rating.Count,
				p.Price.Amount, p.Price.Currency.String(), line.Quantity)
			if err != nil {
				return zero, fmt.Errorf("insert order line: %w", err)
			}
		}

		return zero, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	if orderID == "" {
		return domain.Order{}, fmt.Errorf("orderID is empty")
	}

	row := r.pool.QueryRow(ctx, `
		SELECT id, full_name, email, phone, address, city, state, zip_code, country,
		       total_amount, total_currency, status, order_date
		FROM orders WHERE id = $1`, orderID)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("scanOrder: %w", err)
	}

	order.Lines, err = r.orderLines(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orderLines: %w", err)
	}

	return order, nil
}

func (r *orderRepository) ListOrders(ctx context.Context, ownerID string) ([]domain.Order, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, email, phone, address, city, state, zip_code, country,
		       total_amount, total_currency, status, order_date
		FROM orders WHERE owner_id = $1
		ORDER BY order_date DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanOrder: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	for i := range orders {
		orders[i].Lines, err = r.orderLines(ctx, orders[i].ID)
		if err != nil {
			return nil, fmt.Errorf("orderLines: %w", err)
		}
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (bool, error) {
	if orderID == "" {
		return false, fmt.Errorf("orderID is empty")
	}
	if !status.Valid() {
		return false, fmt.Errorf("status[%s] is not valid", status)
	}

	tag, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, orderID, string(status))
	if err != nil {
		return false, fmt.Errorf("update status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *orderRepository) orderLines(ctx context.Context, orderID string) ([]domain.CartLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_id, title, description, category, image,
		       rating_rate, rating_count, price_amount, price_currency, quantity
		FROM order_lines WHERE order_id = $1
		ORDER BY position`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var (
			line         domain.CartLine
			currencyCode string
		)
		p := &line.Product

		err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Image,
			&p.Rating.Rate, &p.Rating.Count, &p.Price.Amount, &currencyCode, &line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}

		p.Price.Currency, err = currency.ParseISO(currencyCode)
		if err != nil {
			return nil, fmt.Errorf("currency[%s] is not valid: %w", currencyCode, err)
		}

		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return lines, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		order        domain.Order
		currencyCode string
		status       string
	)
	info := &order.ShippingInfo

	err := row.Scan(&order.ID, &info.FullName, &info.Email, &info.Phone, &info.Address,
		&info.City, &info.State, &info.ZipCode, &info.Country,
		&order.TotalAmount.Amount, &currencyCode, &status, &order.OrderDate)
	if err != nil {
		return domain.Order{}, err
	}

	order.TotalAmount.Currency, err = currency.ParseISO(currencyCode)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", currencyCode, err)
	}

	order.Status = domain.OrderStatus(status)
	return order, nil
}
