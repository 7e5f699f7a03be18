package services

import (
	"drone-delivery-service/internal/domain"
	"fmt"
)

// HomeRoute is the path flown from some position back to home.
// Positions holds the destination of every leg, so it always has the
// same length as Legs.
type HomeRoute struct {
	Positions []domain.Position
	Legs      []domain.FlightLeg
}

// Moves is the number of real (non-hover) legs on the route.
func (r HomeRoute) Moves() int {
	n := 0
	for _, l := range r.Legs {
		if !l.IsHover() {
			n++
		}
	}
	return n
}

// ReturnHome flies from `from` to the configured home position using the
// home fan increment, then hovers once to settle.
//
// It does not account moves against the budget; callers do. The route is
// bounded by params.MoveBudget legs. If the search fails, or home is not
// reached within that bound, the partial route is returned with an error
// wrapping domain.ErrUnreachable and without the settling hover.
func ReturnHome(
	from domain.Position,
	zones []domain.Zone,
	params domain.FlightParams,
) (HomeRoute, error) {
	route := HomeRoute{}
	current := from

	for !params.CloseTo(current, params.Home) {
		if len(route.Legs) >= params.MoveBudget {
			return route, fmt.Errorf(
				"return home: not home after %d legs: %w",
				len(route.Legs), domain.ErrUnreachable,
			)
		}

		h, err := FindHeading(current, params.Home, zones, params, params.HomeFan)
		if err != nil {
			return route, fmt.Errorf("return home: %w", err)
		}

		next := domain.Step(current, h, params.StepLength)
		route.Legs = append(route.Legs, domain.FlightLeg{
			OrderNo: domain.HomeTag,
			From:    current,
			Heading: h,
			To:      next,
		})
		route.Positions = append(route.Positions, next)
		current = next
	}

	route.Legs = append(route.Legs, domain.FlightLeg{
		OrderNo: domain.HomeTag,
		From:    current,
		Heading: domain.Hover,
		To:      current,
		Stop:    domain.StopHome,
	})
	route.Positions = append(route.Positions, current)

	return route, nil
}
