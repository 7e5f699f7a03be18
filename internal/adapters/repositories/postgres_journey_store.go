package repositories

import (
	"context"
	"database/sql"
	"drone-delivery-service/internal/domain"
	"drone-delivery-service/internal/platform/obs"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the JourneyStore port. Each save
// replaces the previous run's deliveries and flightpath rows.
type PostgresJourneyStore struct{ DB *sql.DB }

func NewPostgresJourneyStore(db *sql.DB) *PostgresJourneyStore {
	return &PostgresJourneyStore{DB: db}
}

func (s *PostgresJourneyStore) SaveJourney(
	ctx context.Context,
	legs []domain.FlightLeg,
	deliveries []domain.Delivery,
) (err error) {
	defer obs.Time(ctx, "journey.SaveJourney")(&err)

	if s.DB == nil {
		return errors.New("postgres journey store: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save journey: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range []string{`DELETE FROM flightpath;`, `DELETE FROM deliveries;`} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("save journey: clear previous run: %w", err)
		}
	}

	legStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO flightpath (seq, order_no, from_longitude, from_latitude, angle, to_longitude, to_latitude)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`)
	if err != nil {
		return fmt.Errorf("save journey: prepare flightpath insert: %w", err)
	}
	defer legStmt.Close()

	for i, l := range legs {
		if _, err := legStmt.ExecContext(ctx, i, l.OrderNo, l.From.X, l.From.Y, int(l.Heading), l.To.X, l.To.Y); err != nil {
			return fmt.Errorf("save journey: insert leg #%d: %w", i, err)
		}
	}

	deliveryStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO deliveries (order_no, delivered_to, cost_in_pence)
	VALUES ($1, $2, $3);
	`)
	if err != nil {
		return fmt.Errorf("save journey: prepare deliveries insert: %w", err)
	}
	defer deliveryStmt.Close()

	for _, d := range deliveries {
		if _, err := deliveryStmt.ExecContext(ctx, d.OrderNo, d.DeliveredTo, d.CostInPence); err != nil {
			return fmt.Errorf("save journey: insert delivery order_no=%s: %w", d.OrderNo, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save journey: commit tx: %w", err)
	}

	return nil
}
