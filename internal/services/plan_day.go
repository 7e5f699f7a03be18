package services

import (
	"context"
	"drone-delivery-service/internal/domain"
	"drone-delivery-service/internal/platform/obs"
	"drone-delivery-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// lookupConcurrency bounds parallel catalog calls against the web server.
const lookupConcurrency = 5

var tracer = otel.Tracer("drone-delivery-service/internal/services")

type PlanDayRequest struct {
	Date     time.Time
	Params   domain.FlightParams
	FeePence int
}

// Collaborators used by PlanDay. Store and Metrics are optional.
type PlanDayDeps struct {
	Orders    ports.OrderRepository
	Menu      ports.MenuCatalog
	Locations ports.LocationResolver
	Zones     ports.ZoneProvider
	Store     ports.JourneyStore
	Metrics   *obs.PlannerMetrics
}

// DayPlan is everything one planning run produced.
type DayPlan struct {
	Date       time.Time
	Items      []domain.OrderItem
	Journey    *domain.Journey
	Deliveries []domain.Delivery
}

// PlanDay plans and records the drone's flight for all orders due on a date.
//
// All external lookups finish before the flight planner starts, and results
// are persisted only after it returns. When the planner stops on an
// unreachable target the partial plan is still aggregated, stored and
// returned together with the error.
func PlanDay(
	ctx context.Context,
	req PlanDayRequest,
	deps PlanDayDeps,
) (_ *DayPlan, err error) {
	defer obs.Time(ctx, "services.PlanDay")(&err)

	ctx, span := tracer.Start(ctx, "PlanDay")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()
	span.SetAttributes(attribute.String("plan.date", req.Date.Format(time.DateOnly)))

	if deps.Orders == nil || deps.Menu == nil || deps.Locations == nil || deps.Zones == nil {
		return nil, errors.New("plan day: orders, menu, locations and zones collaborators are required")
	}

	items, err := deps.Orders.ListOrders(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("plan day: list orders: %w", err)
	}

	if err := resolveItems(ctx, items, deps.Menu, deps.Locations); err != nil {
		return nil, fmt.Errorf("plan day: %w", err)
	}
	items = SortOrdersByValue(items)

	zones, err := deps.Zones.NoFlyZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan day: fetch no-fly zones: %w", err)
	}

	span.SetAttributes(
		attribute.Int("plan.items", len(items)),
		attribute.Int("plan.zones", len(zones)),
	)

	start := time.Now()
	journey, planErr := PlanFlight(items, zones, req.Params)
	if journey == nil {
		return nil, fmt.Errorf("plan day: %w", planErr)
	}

	deliveries := AggregateDeliveries(journey.Legs, items, req.FeePence)
	deps.Metrics.ObserveRun(journey, len(deliveries), time.Since(start))

	span.SetAttributes(
		attribute.Int("plan.moves", journey.Moves()),
		attribute.Int("plan.deliveries", len(deliveries)),
		attribute.String("plan.termination", journey.Termination.String()),
	)
	log.Printf(
		"plan day date=%s items=%d zones=%d moves=%d deliveries=%d termination=%s",
		req.Date.Format(time.DateOnly), len(items), len(zones), journey.Moves(), len(deliveries), journey.Termination,
	)

	plan := &DayPlan{
		Date:       req.Date,
		Items:      items,
		Journey:    journey,
		Deliveries: deliveries,
	}

	if deps.Store != nil {
		if err := deps.Store.SaveJourney(ctx, journey.Legs, deliveries); err != nil {
			return plan, fmt.Errorf("plan day: save journey: %w", err)
		}
	}

	if planErr != nil {
		return plan, fmt.Errorf("plan day: %w", planErr)
	}

	return plan, nil
}

// resolveItems fills in prices and coordinates for every item in place.
// Menu lookups run first because shop location codes come from the menus.
func resolveItems(
	ctx context.Context,
	items []domain.OrderItem,
	menu ports.MenuCatalog,
	locations ports.LocationResolver,
) error {
	names := uniqueStrings(items, func(it domain.OrderItem) string { return it.Item })

	var mu sync.Mutex
	menuItems := make(map[string]ports.MenuItem, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for _, name := range names {
		name := name
		g.Go(func() error {
			mi, err := menu.LookupItem(gctx, name)
			if err != nil {
				return fmt.Errorf("look up item %q: %w", name, err)
			}
			mu.Lock()
			menuItems[name] = mi
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	locCodes := uniqueStrings(items, func(it domain.OrderItem) string { return it.DeliverTo })
	seen := make(map[string]struct{}, len(locCodes))
	for _, c := range locCodes {
		seen[c] = struct{}{}
	}
	for _, name := range names {
		shop := strings.TrimSpace(menuItems[name].ShopLocation)
		if _, ok := seen[shop]; !ok && shop != "" {
			seen[shop] = struct{}{}
			locCodes = append(locCodes, shop)
		}
	}

	positions := make(map[string]domain.Position, len(locCodes))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for _, code := range locCodes {
		code := code
		g.Go(func() error {
			p, err := locations.Resolve(gctx, code)
			if err != nil {
				return fmt.Errorf("resolve location %q: %w", code, err)
			}
			mu.Lock()
			positions[code] = p
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range items {
		mi := menuItems[items[i].Item]
		shop, ok := positions[strings.TrimSpace(mi.ShopLocation)]
		if !ok {
			return fmt.Errorf("item %q has no shop location", items[i].Item)
		}
		items[i].PricePence = mi.PricePence
		items[i].Pickup = shop
		items[i].Dropoff = positions[items[i].DeliverTo]
	}

	return nil
}

func uniqueStrings(items []domain.OrderItem, key func(domain.OrderItem) string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		k := key(it)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
