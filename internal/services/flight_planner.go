package services

import (
	"drone-delivery-service/internal/domain"
	"errors"
	"fmt"
)

// waypoint is one flattened navigation target.
type waypoint struct {
	target domain.Position
	owner  string
	stop   domain.StopKind
}

// flattenWaypoints turns line items into the ordered list of targets.
//
// Consecutive items sharing an order number form one order. Each order
// visits the pickup of every item, skipping a pickup within tolerance of the
// one just visited so several items from one shop are collected in a single
// stop, and then the order's drop-off. A final home target closes the day.
func flattenWaypoints(items []domain.OrderItem, params domain.FlightParams) []waypoint {
	out := make([]waypoint, 0, 2*len(items)+1)

	for i := 0; i < len(items); {
		orderNo := items[i].OrderNo
		j := i
		for j < len(items) && items[j].OrderNo == orderNo {
			if j == i || !params.CloseTo(items[j].Pickup, items[j-1].Pickup) {
				out = append(out, waypoint{target: items[j].Pickup, owner: orderNo, stop: domain.StopPickup})
			}
			j++
		}
		out = append(out, waypoint{target: items[j-1].Dropoff, owner: orderNo, stop: domain.StopDropoff})
		i = j
	}

	return append(out, waypoint{target: params.Home, owner: domain.HomeTag, stop: domain.StopHome})
}

// flight is the mutable state of a single planning run.
type flight struct {
	params  domain.FlightParams
	zones   []domain.Zone
	journey *domain.Journey
	current domain.Position
}

func (f *flight) record(leg domain.FlightLeg) {
	f.journey.Legs = append(f.journey.Legs, leg)
	f.journey.Positions = append(f.journey.Positions, leg.To)
	f.current = leg.To
}

// affordable reports whether one more leg ending at next still leaves
// enough budget to fly home from next and hover there.
func (f *flight) affordable(next domain.Position) bool {
	sim, err := ReturnHome(next, f.zones, f.params)
	if err != nil {
		return false
	}
	return f.journey.Moves()+sim.Moves()+2 <= f.params.MoveBudget
}

// forceHome abandons the remaining targets and flies home from the
// current position.
func (f *flight) forceHome() error {
	route, err := ReturnHome(f.current, f.zones, f.params)
	if room := f.params.MoveBudget - f.journey.Moves(); err != nil && len(route.Legs) > room {
		route.Legs = route.Legs[:max(room, 0)]
	}
	for _, leg := range route.Legs {
		f.record(leg)
	}
	if err != nil {
		f.journey.Termination = domain.TerminationUnreachable
		return fmt.Errorf("forced return: %w", err)
	}
	f.journey.Termination = domain.TerminationBudget
	return nil
}

// errBudget signals that the run was cut short by the move budget.
var errBudget = errors.New("move budget exhausted")

// fly navigates to one waypoint and hovers on arrival.
func (f *flight) fly(wp waypoint) error {
	for !f.params.CloseTo(f.current, wp.target) {
		h, err := FindHeading(f.current, wp.target, f.zones, f.params, f.params.WaypointFan)
		if err != nil {
			f.journey.Termination = domain.TerminationUnreachable
			return fmt.Errorf("order %s %s: %w", wp.owner, wp.stop, err)
		}

		next := domain.Step(f.current, h, f.params.StepLength)
		if !f.affordable(next) {
			if err := f.forceHome(); err != nil {
				return err
			}
			return errBudget
		}

		f.record(domain.FlightLeg{OrderNo: wp.owner, From: f.current, Heading: h, To: next})
	}

	// The final home hover is always covered by the budget already reserved.
	if wp.stop != domain.StopHome && !f.affordable(f.current) {
		if err := f.forceHome(); err != nil {
			return err
		}
		return errBudget
	}

	f.record(domain.FlightLeg{
		OrderNo: wp.owner,
		From:    f.current,
		Heading: domain.Hover,
		To:      f.current,
		Stop:    wp.stop,
	})
	return nil
}

func validateItems(items []domain.OrderItem) error {
	for i, it := range items {
		if it.OrderNo == "" || it.OrderNo == domain.HomeTag {
			return fmt.Errorf("%w: item %d has order number %q", domain.ErrInvalidInput, i, it.OrderNo)
		}
		if !domain.Finite(it.Pickup) || !domain.Finite(it.Dropoff) {
			return fmt.Errorf("%w: order %s has a non-finite location", domain.ErrInvalidInput, it.OrderNo)
		}
	}
	return nil
}

// PlanFlight computes the whole day's route for the given line items.
//
// Items are flown in the order given. Before every leg the planner
// simulates the flight home from the leg's end; if that would overrun the
// move budget the drone returns home from where it is and the journey ends
// with TerminationBudget, which is not an error. If no clear heading exists
// the journey ends with TerminationUnreachable and an error wrapping
// domain.ErrUnreachable. Either way the journey flown so far is returned.
// Malformed input fails with domain.ErrInvalidInput before any stepping.
func PlanFlight(
	items []domain.OrderItem,
	zones []domain.Zone,
	params domain.FlightParams,
) (*domain.Journey, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("plan flight: %w", err)
	}
	if err := domain.ValidateZones(zones); err != nil {
		return nil, fmt.Errorf("plan flight: %w", err)
	}
	if err := validateItems(items); err != nil {
		return nil, fmt.Errorf("plan flight: %w", err)
	}

	f := &flight{
		params: params,
		zones:  zones,
		journey: &domain.Journey{
			Positions:   []domain.Position{params.Home},
			Termination: domain.TerminationCompleted,
		},
		current: params.Home,
	}

	for _, wp := range flattenWaypoints(items, params) {
		err := f.fly(wp)
		if errors.Is(err, errBudget) {
			break
		}
		if err != nil {
			return f.journey, fmt.Errorf("plan flight: %w", err)
		}
	}

	return f.journey, nil
}
