package domain

import (
	"fmt"
	"math"
)

// Reference values for the drone operating around Appleton Tower.
const (
	DefaultStepLength  = 0.00015
	DefaultTolerance   = 0.00015
	DefaultMoveBudget  = 1500
	DefaultWaypointFan = 30
	DefaultHomeFan     = 20
	DefaultDeliveryFee = 50
)

// FlightParams is the fixed configuration of one planning run.
type FlightParams struct {
	Home       Position
	Bounds     Bounds
	StepLength float64
	// Tolerance is the close-to distance; arriving within it counts as
	// reaching a target.
	Tolerance  float64
	MoveBudget int
	// Rotation increments in degrees for the positive avoidance fan while
	// travelling between waypoints and while flying home.
	WaypointFan int
	HomeFan     int
}

// DefaultFlightParams returns the reference configuration.
func DefaultFlightParams() FlightParams {
	return FlightParams{
		Home:        NewPosition(-3.1869, 55.9445),
		Bounds:      NewBounds(-3.192473, -3.184319, 55.942617, 55.946233),
		StepLength:  DefaultStepLength,
		Tolerance:   DefaultTolerance,
		MoveBudget:  DefaultMoveBudget,
		WaypointFan: DefaultWaypointFan,
		HomeFan:     DefaultHomeFan,
	}
}

// CloseTo reports whether a and b are within the arrival tolerance.
func (p FlightParams) CloseTo(a, b Position) bool {
	return DistanceSquared(a, b) < p.Tolerance*p.Tolerance
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Validate rejects configurations the planner cannot step with.
func (p FlightParams) Validate() error {
	if !finite(p.StepLength) || p.StepLength <= 0 {
		return fmt.Errorf("%w: step length must be positive, got %v", ErrInvalidInput, p.StepLength)
	}
	if !finite(p.Tolerance) || p.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalidInput, p.Tolerance)
	}
	if p.MoveBudget <= 0 {
		return fmt.Errorf("%w: move budget must be positive, got %d", ErrInvalidInput, p.MoveBudget)
	}
	if p.WaypointFan <= 0 || p.HomeFan <= 0 {
		return fmt.Errorf("%w: fan increments must be positive, got %d/%d", ErrInvalidInput, p.WaypointFan, p.HomeFan)
	}
	if !Finite(p.Bounds.Min) || !Finite(p.Bounds.Max) || p.Bounds.Min.X >= p.Bounds.Max.X || p.Bounds.Min.Y >= p.Bounds.Max.Y {
		return fmt.Errorf("%w: confinement bounds are empty or not finite", ErrInvalidInput)
	}
	if !Finite(p.Home) || !Confined(p.Home, p.Bounds) {
		return fmt.Errorf("%w: home (%v, %v) must lie inside the confinement area", ErrInvalidInput, p.Home.X, p.Home.Y)
	}
	return nil
}

// ValidateZones rejects degenerate or non-finite no-fly zones.
func ValidateZones(zones []Zone) error {
	for i, z := range zones {
		if len(z.Vertices) < 3 {
			return fmt.Errorf("%w: zone %d has %d vertices, need at least 3", ErrInvalidInput, i, len(z.Vertices))
		}
		for _, v := range z.Vertices {
			if !Finite(v) {
				return fmt.Errorf("%w: zone %d has a non-finite vertex", ErrInvalidInput, i)
			}
		}
	}
	return nil
}
