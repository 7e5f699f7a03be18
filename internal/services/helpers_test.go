package services

import (
	"drone-delivery-service/internal/domain"
	"math"
	"testing"
)

// offset returns the position n steps from p along h.
func offset(p domain.Position, h domain.Heading, n float64) domain.Position {
	return domain.Step(p, h, n*domain.DefaultStepLength)
}

// box is a square zone of the given half-width centred on c.
func box(c domain.Position, half float64) domain.Zone {
	return domain.Zone{Vertices: []domain.Position{
		domain.NewPosition(c.X-half, c.Y-half),
		domain.NewPosition(c.X+half, c.Y-half),
		domain.NewPosition(c.X+half, c.Y+half),
		domain.NewPosition(c.X-half, c.Y+half),
	}}
}

// checkLegs verifies the properties every recorded journey must have.
func checkLegs(t *testing.T, j *domain.Journey, zones []domain.Zone, params domain.FlightParams) {
	t.Helper()

	if len(j.Positions) != len(j.Legs)+1 {
		t.Fatalf("len(Positions) = %d, want len(Legs)+1 = %d", len(j.Positions), len(j.Legs)+1)
	}
	if j.Positions[0] != params.Home {
		t.Fatalf("Positions[0] = %v, want home %v", j.Positions[0], params.Home)
	}
	if j.Moves() > params.MoveBudget {
		t.Fatalf("Moves = %d, exceeds budget %d", j.Moves(), params.MoveBudget)
	}

	for i, leg := range j.Legs {
		if j.Positions[i+1] != leg.To {
			t.Fatalf("leg %d To = %v, Positions[%d] = %v", i, leg.To, i+1, j.Positions[i+1])
		}
		if i > 0 && j.Legs[i-1].To != leg.From {
			t.Fatalf("leg %d starts at %v, previous ended at %v", i, leg.From, j.Legs[i-1].To)
		}
		if leg.IsHover() {
			if leg.From != leg.To {
				t.Fatalf("hover leg %d moved from %v to %v", i, leg.From, leg.To)
			}
			continue
		}
		if !leg.Heading.OnGrid() {
			t.Fatalf("leg %d heading %v is off grid", i, leg.Heading)
		}
		dist := math.Sqrt(domain.DistanceSquared(leg.From, leg.To))
		if math.Abs(dist-params.StepLength) > 1e-12 {
			t.Fatalf("leg %d length = %v, want %v", i, dist, params.StepLength)
		}
		if !domain.Confined(leg.To, params.Bounds) {
			t.Fatalf("leg %d ends outside confinement at %v", i, leg.To)
		}
		if domain.CrossesAnyZone(domain.Segment{A: leg.From, B: leg.To}, zones) {
			t.Fatalf("leg %d from %v to %v crosses a no-fly zone", i, leg.From, leg.To)
		}
	}
}
