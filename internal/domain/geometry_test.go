package domain

import (
	"errors"
	"math"
	"testing"
)

func square(minX, minY, maxX, maxY float64) Zone {
	return Zone{Vertices: []Position{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}}
}

func TestConfinedIsStrict(t *testing.T) {
	b := NewBounds(0, 10, 0, 10)

	cases := []struct {
		p    Position
		want bool
	}{
		{NewPosition(5, 5), true},
		{NewPosition(0, 5), false},
		{NewPosition(5, 10), false},
		{NewPosition(-1, 5), false},
		{NewPosition(9.999, 0.001), true},
	}

	for _, c := range cases {
		if got := Confined(c.p, b); got != c.want {
			t.Errorf("Confined(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestDistanceSquared(t *testing.T) {
	p := NewPosition(-3.1869, 55.9445)
	if got := DistanceSquared(p, p); got != 0 {
		t.Fatalf("DistanceSquared(p, p) = %v, want 0", got)
	}

	q := NewPosition(p.X+3, p.Y+4)
	if got := DistanceSquared(p, q); math.Abs(got-25) > 1e-9 {
		t.Fatalf("DistanceSquared = %v, want 25", got)
	}
}

func TestSegmentsIntersect(t *testing.T) {
	cases := []struct {
		name string
		s1   Segment
		s2   Segment
		want bool
	}{
		{"crossing", Segment{NewPosition(0, 0), NewPosition(2, 2)}, Segment{NewPosition(0, 2), NewPosition(2, 0)}, true},
		{"parallel", Segment{NewPosition(0, 0), NewPosition(2, 0)}, Segment{NewPosition(0, 1), NewPosition(2, 1)}, false},
		{"touching endpoint", Segment{NewPosition(0, 0), NewPosition(1, 1)}, Segment{NewPosition(1, 1), NewPosition(2, 0)}, true},
		{"collinear overlap", Segment{NewPosition(0, 0), NewPosition(2, 0)}, Segment{NewPosition(1, 0), NewPosition(3, 0)}, true},
		{"collinear apart", Segment{NewPosition(0, 0), NewPosition(1, 0)}, Segment{NewPosition(2, 0), NewPosition(3, 0)}, false},
		{"t junction", Segment{NewPosition(0, 0), NewPosition(2, 0)}, Segment{NewPosition(1, 0), NewPosition(1, 5)}, true},
		{"short of crossing", Segment{NewPosition(0, 0), NewPosition(0.9, 0)}, Segment{NewPosition(1, -1), NewPosition(1, 1)}, false},
	}

	for _, c := range cases {
		if got := SegmentsIntersect(c.s1, c.s2); got != c.want {
			t.Errorf("%s: SegmentsIntersect = %v, want %v", c.name, got, c.want)
		}
		if got := SegmentsIntersect(c.s2, c.s1); got != c.want {
			t.Errorf("%s (swapped): SegmentsIntersect = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCrossesAnyZoneIncludesClosingEdge(t *testing.T) {
	zones := []Zone{square(1, 1, 2, 2)}

	// crosses only the edge from the last vertex back to the first
	seg := Segment{A: NewPosition(0, 1.5), B: NewPosition(1.5, 1.5)}
	if !CrossesAnyZone(seg, zones) {
		t.Fatalf("segment through closing edge not detected")
	}

	clear := Segment{A: NewPosition(0, 0), B: NewPosition(0.5, 3)}
	if CrossesAnyZone(clear, zones) {
		t.Fatalf("segment clear of zone reported as crossing")
	}
	if CrossesAnyZone(seg, nil) {
		t.Fatalf("no zones must never cross")
	}
}

func TestFlightParamsValidate(t *testing.T) {
	if err := DefaultFlightParams().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	p := DefaultFlightParams()
	p.Home = NewPosition(0, 0)
	if err := p.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("home outside bounds: err = %v, want ErrInvalidInput", err)
	}

	p = DefaultFlightParams()
	p.StepLength = math.NaN()
	if err := p.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("NaN step: err = %v, want ErrInvalidInput", err)
	}
}

func TestValidateZones(t *testing.T) {
	if err := ValidateZones([]Zone{square(0, 0, 1, 1)}); err != nil {
		t.Fatalf("square zone rejected: %v", err)
	}

	line := Zone{Vertices: []Position{NewPosition(0, 0), NewPosition(1, 1)}}
	if err := ValidateZones([]Zone{line}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("two-vertex zone: err = %v, want ErrInvalidInput", err)
	}
}

func TestCloseTo(t *testing.T) {
	p := DefaultFlightParams()
	a := p.Home

	if !p.CloseTo(a, a) {
		t.Fatalf("a position is not close to itself")
	}
	if p.CloseTo(a, Step(a, 0, p.StepLength*1.01)) {
		t.Fatalf("more than one step away must not count as close")
	}
	if !p.CloseTo(a, Step(a, 0, p.StepLength/2)) {
		t.Fatalf("half a step away must count as close")
	}
}
