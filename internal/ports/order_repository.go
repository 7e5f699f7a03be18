package ports

import (
	"context"
	"drone-delivery-service/internal/domain"
	"time"
)

// Port: a boundary for retrieving the order line items due on a day.
// Returned items carry location codes and item names only; positions and
// prices are resolved by the caller.
type OrderRepository interface {
	ListOrders(ctx context.Context, date time.Time) ([]domain.OrderItem, error)
}

// Port: a boundary for persisting the outcome of a planning run.
type JourneyStore interface {
	SaveJourney(ctx context.Context, legs []domain.FlightLeg, deliveries []domain.Delivery) error
}
