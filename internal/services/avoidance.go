package services

import (
	"drone-delivery-service/internal/domain"
	"fmt"
)

// fanResult is the outcome of sweeping one rotation direction.
type fanResult struct {
	heading domain.Heading
	// distance from the rotated endpoint to the target, squared
	distance float64
	found    bool
}

// positiveOffsets returns 0, +step, +2*step, ... up to 180.
func positiveOffsets(step int) []int {
	offsets := make([]int, 0, 180/step+1)
	for o := 0; o <= 180; o += step {
		offsets = append(offsets, o)
	}
	return offsets
}

// negativeOffsets returns -10, -(10+step), ... down to -180.
func negativeOffsets(step int) []int {
	offsets := make([]int, 0, 180/step+1)
	for o := -10; o >= -180; o -= step {
		offsets = append(offsets, o)
	}
	return offsets
}

// usable reports whether a real move along h from current stays clear of
// every zone and ends inside the confinement area.
func usable(current domain.Position, h domain.Heading, zones []domain.Zone, params domain.FlightParams) bool {
	next := domain.Step(current, h, params.StepLength)
	if !domain.Confined(next, params.Bounds) {
		return false
	}
	return !domain.CrossesAnyZone(domain.Segment{A: current, B: next}, zones)
}

// crosses reports whether the stepped move along h touches a zone.
func crosses(current domain.Position, h domain.Heading, zones []domain.Zone, params domain.FlightParams) bool {
	next := domain.Step(current, h, params.StepLength)
	return domain.CrossesAnyZone(domain.Segment{A: current, B: next}, zones)
}

// settleDirect accepts the direct heading or one of its 10° neighbours,
// +10 tried first.
func settleDirect(current domain.Position, h domain.Heading, zones []domain.Zone, params domain.FlightParams) (domain.Heading, bool) {
	for _, candidate := range []domain.Heading{h, h.Rotate(10), h.Rotate(-10)} {
		if usable(current, candidate, zones, params) {
			return candidate, true
		}
	}
	return 0, false
}

// settleFan corrects a fan heading whose stepped move crosses a zone even
// though the rotated line did not. Confinement is not retried.
func settleFan(current domain.Position, h domain.Heading, zones []domain.Zone, params domain.FlightParams) (domain.Heading, bool) {
	if crosses(current, h, zones, params) {
		switch {
		case !crosses(current, h.Rotate(10), zones, params):
			h = h.Rotate(10)
		case !crosses(current, h.Rotate(-10), zones, params):
			h = h.Rotate(-10)
		default:
			return 0, false
		}
	}
	if !domain.Confined(domain.Step(current, h, params.StepLength), params.Bounds) {
		return 0, false
	}
	return h, true
}

// sweepFan rotates the line from current to target about current by each
// offset in turn. The first rotated line that clears every zone yields the
// fan's heading, provided a confined step along it can be settled.
func sweepFan(
	current domain.Position,
	target domain.Position,
	offsets []int,
	zones []domain.Zone,
	params domain.FlightParams,
) fanResult {
	for _, offset := range offsets {
		end := domain.RotateAbout(target, current, float64(offset))
		if domain.CrossesAnyZone(domain.Segment{A: current, B: end}, zones) {
			continue
		}

		h := domain.ToHeading(domain.BearingTo(current, end))
		h, ok := settleFan(current, h, zones, params)
		if !ok {
			continue
		}

		return fanResult{
			heading:  h,
			distance: domain.DistanceSquared(end, target),
			found:    true,
		}
	}

	return fanResult{}
}

// FindHeading picks the next heading from current towards target.
//
// While the straight line to target is clear the direct heading is used,
// nudged by 10° if its step would clip a zone or leave the confinement
// area. Otherwise that line is rotated about current in two fans:
// anticlockwise by multiples of fanStep starting at 0, clockwise starting
// at -10. When both fans find a clear line the one whose rotated target
// lies closer to the real target wins, with exact ties going to the
// anticlockwise fan. The search is local and greedy; it makes no attempt
// to find a shortest path.
func FindHeading(
	current domain.Position,
	target domain.Position,
	zones []domain.Zone,
	params domain.FlightParams,
	fanStep int,
) (domain.Heading, error) {
	direct := domain.ToHeading(domain.BearingTo(current, target))

	if !domain.CrossesAnyZone(domain.Segment{A: current, B: target}, zones) {
		if h, ok := settleDirect(current, direct, zones, params); ok {
			return h, nil
		}
	}

	pos := sweepFan(current, target, positiveOffsets(fanStep), zones, params)
	neg := sweepFan(current, target, negativeOffsets(fanStep), zones, params)

	return pick(pos, neg, current, target)
}

// pick resolves the two fans' results.
func pick(pos, neg fanResult, current, target domain.Position) (domain.Heading, error) {
	switch {
	case pos.found && neg.found:
		if pos.distance <= neg.distance {
			return pos.heading, nil
		}
		return neg.heading, nil
	case pos.found:
		return pos.heading, nil
	case neg.found:
		return neg.heading, nil
	}

	return 0, fmt.Errorf(
		"find heading: from (%.6f, %.6f) towards (%.6f, %.6f): %w",
		current.X, current.Y, target.X, target.Y, domain.ErrUnreachable,
	)
}
