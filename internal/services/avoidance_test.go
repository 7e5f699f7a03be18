package services

import (
	"drone-delivery-service/internal/domain"
	"errors"
	"testing"
)

func TestFindHeadingDirectWhenClear(t *testing.T) {
	params := domain.DefaultFlightParams()
	target := offset(params.Home, 40, 5)

	h, err := FindHeading(params.Home, target, nil, params, params.WaypointFan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != 40 {
		t.Fatalf("heading = %v, want 40", h)
	}
}

func TestFindHeadingAvoidsWall(t *testing.T) {
	params := domain.DefaultFlightParams()
	step := params.StepLength
	current := params.Home
	target := offset(current, 0, 10)

	// a tall wall half a step east of current, between it and the target
	wall := domain.Zone{Vertices: []domain.Position{
		domain.NewPosition(current.X+0.5*step, current.Y-5*step),
		domain.NewPosition(current.X+2*step, current.Y-5*step),
		domain.NewPosition(current.X+2*step, current.Y+5*step),
		domain.NewPosition(current.X+0.5*step, current.Y+5*step),
	}}
	zones := []domain.Zone{wall}

	for _, fan := range []int{params.WaypointFan, params.HomeFan} {
		h, err := FindHeading(current, target, zones, params, fan)
		if err != nil {
			t.Fatalf("fan %d: unexpected error: %v", fan, err)
		}
		if !h.OnGrid() {
			t.Fatalf("fan %d: heading %v is off grid", fan, h)
		}

		next := domain.Step(current, h, step)
		if domain.CrossesAnyZone(domain.Segment{A: current, B: next}, zones) {
			t.Fatalf("fan %d: heading %v crosses the wall", fan, h)
		}
		if !domain.Confined(next, params.Bounds) {
			t.Fatalf("fan %d: heading %v leaves the confinement area", fan, h)
		}
	}
}

func TestFindHeadingEnclosedIsUnreachable(t *testing.T) {
	params := domain.DefaultFlightParams()
	current := params.Home
	zones := []domain.Zone{box(current, 0.3*params.StepLength)}

	_, err := FindHeading(current, offset(current, 0, 10), zones, params, params.WaypointFan)
	if !errors.Is(err, domain.ErrUnreachable) {
		t.Fatalf("err = %v, want ErrUnreachable", err)
	}
}

func TestFanOffsets(t *testing.T) {
	pos := positiveOffsets(30)
	if len(pos) != 7 || pos[0] != 0 || pos[6] != 180 {
		t.Fatalf("positiveOffsets(30) = %v", pos)
	}

	neg := negativeOffsets(20)
	if neg[0] != -10 || neg[len(neg)-1] != -170 {
		t.Fatalf("negativeOffsets(20) = %v", neg)
	}
	for _, o := range neg {
		if o < -180 {
			t.Fatalf("negativeOffsets(20) went past -180: %v", neg)
		}
	}
}

// unitParams is a unit-square world with a step of 0.1.
func unitParams() domain.FlightParams {
	params := domain.DefaultFlightParams()
	params.Home = domain.NewPosition(0, 0)
	params.Bounds = domain.NewBounds(-1, 1, -1, 1)
	params.StepLength = 0.1
	params.Tolerance = 0.1
	return params
}

// slab is a thin vertical zone at x 0.5..0.52 spanning y lo..hi.
func slab(lo, hi float64) domain.Zone {
	return domain.Zone{Vertices: []domain.Position{
		domain.NewPosition(0.5, lo),
		domain.NewPosition(0.52, lo),
		domain.NewPosition(0.52, hi),
		domain.NewPosition(0.5, hi),
	}}
}

func TestFindHeadingFansTieGoesAnticlockwise(t *testing.T) {
	params := unitParams()
	current := domain.NewPosition(0, 0)
	target := domain.NewPosition(1, 0)
	zones := []domain.Zone{slab(-0.13, 0.13)}

	pos := sweepFan(current, target, positiveOffsets(10), zones, params)
	neg := sweepFan(current, target, negativeOffsets(10), zones, params)
	if !pos.found || !neg.found {
		t.Fatalf("pos = %+v, neg = %+v, want both found", pos, neg)
	}
	if pos.heading != 20 || neg.heading != 340 {
		t.Fatalf("headings = %v, %v, want 20, 340", pos.heading, neg.heading)
	}
	if pos.distance != neg.distance {
		t.Fatalf("distances = %v, %v, want equal", pos.distance, neg.distance)
	}

	h, err := FindHeading(current, target, zones, params, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != 20 {
		t.Fatalf("heading = %v, want 20", h)
	}
}

func TestFindHeadingCloserFanWins(t *testing.T) {
	params := unitParams()
	current := domain.NewPosition(0, 0)
	target := domain.NewPosition(1, 0)

	// the wall reaches further north, so the anticlockwise fan must turn more
	zones := []domain.Zone{slab(-0.13, 0.25)}

	pos := sweepFan(current, target, positiveOffsets(10), zones, params)
	neg := sweepFan(current, target, negativeOffsets(10), zones, params)
	if pos.heading != 30 || neg.heading != 340 {
		t.Fatalf("headings = %v, %v, want 30, 340", pos.heading, neg.heading)
	}
	if neg.distance >= pos.distance {
		t.Fatalf("distances = %v, %v, want clockwise closer", pos.distance, neg.distance)
	}

	h, err := FindHeading(current, target, zones, params, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != 340 {
		t.Fatalf("heading = %v, want 340", h)
	}
}

func TestFindHeadingSingleFanAlongEdge(t *testing.T) {
	params := unitParams()
	current := domain.NewPosition(0, -0.99)
	target := domain.NewPosition(1, -0.99)
	zones := []domain.Zone{box(domain.NewPosition(0.5, -0.85), 0.2)}

	// every clockwise step would leave the southern edge
	if neg := sweepFan(current, target, negativeOffsets(30), zones, params); neg.found {
		t.Fatalf("clockwise fan found %v, want none", neg.heading)
	}

	h, err := FindHeading(current, target, zones, params, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != 60 {
		t.Fatalf("heading = %v, want 60", h)
	}
	if !usable(current, h, zones, params) {
		t.Fatalf("heading %v is not a clear confined step", h)
	}
}
