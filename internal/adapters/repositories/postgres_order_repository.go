package repositories

import (
	"context"
	"database/sql"
	"drone-delivery-service/internal/domain"
	"drone-delivery-service/internal/platform/obs"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Postgres-backed implementation of the OrderRepository port.
type PostgresOrderRepository struct{ DB *sql.DB }

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

// Return one entry per ordered item for orders due on date, grouped by
// order number.
func (s *PostgresOrderRepository) ListOrders(ctx context.Context, date time.Time) (_ []domain.OrderItem, err error) {
	defer obs.Time(ctx, "orders.ListOrders")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres order repository: DB is nil")
	}

	query := `
	SELECT
		o.order_no,
		o.delivery_date,
		o.customer,
		o.deliver_to,
		d.item
	FROM orders o
	JOIN order_details d ON d.order_no = o.order_no
	WHERE o.delivery_date = $1
	ORDER BY o.order_no, d.detail_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, date.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0, 64)
	for rows.Next() {
		var it domain.OrderItem
		err := rows.Scan(&it.OrderNo, &it.DeliveryDate, &it.Customer, &it.DeliverTo, &it.Item)
		if err != nil {
			return nil, fmt.Errorf("list orders: scan row: %w", err)
		}
		it.OrderNo = strings.TrimSpace(it.OrderNo)
		it.DeliverTo = strings.TrimSpace(it.DeliverTo)
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return items, nil
}
