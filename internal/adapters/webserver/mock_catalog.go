package webserver

import (
	"context"
	"drone-delivery-service/internal/domain"
	"drone-delivery-service/internal/ports"
	"fmt"
)

// MockCatalog is an in-memory MenuCatalog, LocationResolver and
// ZoneProvider for tests and offline runs.
type MockCatalog struct {
	Items     map[string]ports.MenuItem
	Locations map[string]domain.Position
	Zones     []domain.Zone
}

func NewMockCatalog() *MockCatalog {
	return &MockCatalog{
		Items:     map[string]ports.MenuItem{},
		Locations: map[string]domain.Position{},
	}
}

func (m *MockCatalog) LookupItem(ctx context.Context, item string) (ports.MenuItem, error) {
	mi, ok := m.Items[item]
	if !ok {
		return ports.MenuItem{}, fmt.Errorf("missing item %q", item)
	}
	return mi, nil
}

func (m *MockCatalog) Resolve(ctx context.Context, code string) (domain.Position, error) {
	p, ok := m.Locations[code]
	if !ok {
		return domain.Position{}, fmt.Errorf("missing location %q", code)
	}
	return p, nil
}

func (m *MockCatalog) NoFlyZones(ctx context.Context) ([]domain.Zone, error) {
	return m.Zones, nil
}
