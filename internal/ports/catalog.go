package ports

import (
	"context"
	"drone-delivery-service/internal/domain"
)

// Price and shop of a single menu item.
type MenuItem struct {
	PricePence   int
	ShopLocation string
}

// Contract for looking up what an item costs and where it is sold.
type MenuCatalog interface {
	// Return the price and shop location code of the named item.
	LookupItem(ctx context.Context, item string) (MenuItem, error)
}

// Contract for turning a textual location code into coordinates.
type LocationResolver interface {
	Resolve(ctx context.Context, code string) (domain.Position, error)
}

// Contract for retrieving the no-fly zones the drone must avoid.
type ZoneProvider interface {
	NoFlyZones(ctx context.Context) ([]domain.Zone, error)
}
