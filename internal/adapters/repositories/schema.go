package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_no TEXT PRIMARY KEY,
		delivery_date DATE NOT NULL,
		customer TEXT NOT NULL,
		deliver_to TEXT NOT NULL
	);
	`

	createOrderDetailsQuery := `
	CREATE TABLE IF NOT EXISTS order_details (
		detail_id BIGSERIAL PRIMARY KEY,
		order_no TEXT NOT NULL REFERENCES orders(order_no) ON DELETE CASCADE,
		item TEXT NOT NULL
	);
	`

	createDeliveriesQuery := `
	CREATE TABLE IF NOT EXISTS deliveries (
		order_no TEXT NOT NULL,
		delivered_to TEXT NOT NULL,
		cost_in_pence INTEGER NOT NULL
	);
	`

	createFlightpathQuery := `
	CREATE TABLE IF NOT EXISTS flightpath (
		seq INTEGER NOT NULL,
		order_no TEXT NOT NULL,
		from_longitude DOUBLE PRECISION NOT NULL,
		from_latitude DOUBLE PRECISION NOT NULL,
		angle INTEGER NOT NULL,
		to_longitude DOUBLE PRECISION NOT NULL,
		to_latitude DOUBLE PRECISION NOT NULL
	);
	`

	createLocationCacheQuery := `
	CREATE TABLE IF NOT EXISTS location_cache (
		code TEXT PRIMARY KEY,
		lon DOUBLE PRECISION NOT NULL,
		lat DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_delivery_date
	ON orders(delivery_date);
	`

	statements := []string{
		createOrdersQuery,
		createOrderDetailsQuery,
		createDeliveriesQuery,
		createFlightpathQuery,
		createLocationCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type OrderSeed struct {
	OrderNo      string   `json:"order_no"`
	DeliveryDate string   `json:"delivery_date"`
	Customer     string   `json:"customer"`
	DeliverTo    string   `json:"deliver_to"`
	Items        []string `json:"items"`
}

// ParseSeed validates order seed data read from JSON.
func ParseSeed(data []byte) ([]OrderSeed, error) {
	var raw []OrderSeed
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	rows := make([]OrderSeed, 0, len(raw))
	for i, item := range raw {
		orderNo := strings.TrimSpace(item.OrderNo)
		if orderNo == "" {
			return nil, fmt.Errorf("parse seed: order at index %d: order_no cannot be empty", i+1)
		}

		if _, err := time.Parse(time.DateOnly, item.DeliveryDate); err != nil {
			return nil, fmt.Errorf("parse seed: order %s: delivery_date %q: %w", orderNo, item.DeliveryDate, err)
		}

		dest := strings.TrimSpace(item.DeliverTo)
		if dest == "" {
			return nil, fmt.Errorf("parse seed: order %s: deliver_to cannot be empty", orderNo)
		}

		if len(item.Items) == 0 {
			return nil, fmt.Errorf("parse seed: order %s: needs at least one item", orderNo)
		}

		rows = append(rows, OrderSeed{
			OrderNo:      orderNo,
			DeliveryDate: item.DeliveryDate,
			Customer:     strings.TrimSpace(item.Customer),
			DeliverTo:    dest,
			Items:        item.Items,
		})
	}

	return rows, nil
}

// Populate the database with order data from a JSON file.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed orders: read %q: %w", jsonPath, err)
	}

	rows, err := ParseSeed(bytes)
	if err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	orderStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO orders (order_no, delivery_date, customer, deliver_to)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (order_no) DO UPDATE
	SET delivery_date = EXCLUDED.delivery_date,
		customer = EXCLUDED.customer,
		deliver_to = EXCLUDED.deliver_to;
	`)
	if err != nil {
		return fmt.Errorf("seed orders: prepare order insert: %w", err)
	}
	defer orderStmt.Close()

	clearStmt, err := tx.PrepareContext(ctx, `DELETE FROM order_details WHERE order_no = $1;`)
	if err != nil {
		return fmt.Errorf("seed orders: prepare detail delete: %w", err)
	}
	defer clearStmt.Close()

	detailStmt, err := tx.PrepareContext(ctx, `INSERT INTO order_details (order_no, item) VALUES ($1, $2);`)
	if err != nil {
		return fmt.Errorf("seed orders: prepare detail insert: %w", err)
	}
	defer detailStmt.Close()

	for _, o := range rows {
		if _, err := orderStmt.ExecContext(ctx, o.OrderNo, o.DeliveryDate, o.Customer, o.DeliverTo); err != nil {
			return fmt.Errorf("seed orders: insert order_no=%s: %w", o.OrderNo, err)
		}
		if _, err := clearStmt.ExecContext(ctx, o.OrderNo); err != nil {
			return fmt.Errorf("seed orders: clear details order_no=%s: %w", o.OrderNo, err)
		}
		for _, item := range o.Items {
			if _, err := detailStmt.ExecContext(ctx, o.OrderNo, item); err != nil {
				return fmt.Errorf("seed orders: insert item order_no=%s: %w", o.OrderNo, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed orders: commit tx: %w", err)
	}

	return nil
}
