package domain

import (
	"fmt"
	"math"
)

// Heading is a compass direction in degrees, anticlockwise from east, on a
// 10° grid. Hover means the drone stays where it is for one move.
type Heading int

const (
	Hover Heading = -999

	minHeading  Heading = 0
	maxHeading  Heading = 350
	headingGrid         = 10
)

// OnGrid reports whether h is one of the 36 permitted flying headings.
func (h Heading) OnGrid() bool {
	return h >= minHeading && h <= maxHeading && h%headingGrid == 0
}

// Rotate returns the grid heading delta degrees away from h.
func (h Heading) Rotate(delta int) Heading {
	return ToHeading(float64(int(h) + delta))
}

func (h Heading) String() string {
	if h == Hover {
		return "hover"
	}
	return fmt.Sprintf("%d", int(h))
}

// ToHeading normalises deg to [0, 360), rounds to the nearest multiple of
// ten and wraps 360 back to 0.
func ToHeading(deg float64) Heading {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	rounded := int(math.Round(deg/headingGrid)) * headingGrid
	return Heading(rounded % 360)
}

// BearingTo returns the angle of the line from -> to in degrees, in (-180, 180].
func BearingTo(from, to Position) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X) * 180 / math.Pi
}

// Step moves p one step of the given length along h. Hover and off-grid
// headings leave p unchanged.
func Step(p Position, h Heading, length float64) Position {
	if h == Hover || !h.OnGrid() {
		return p
	}
	rad := float64(h) * math.Pi / 180
	return p.Plus(Position{X: math.Cos(rad), Y: math.Sin(rad)}.Times(length))
}

// RotateAbout rotates p anticlockwise by deg degrees around center.
func RotateAbout(p, center Position, deg float64) Position {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	v := p.Minus(center)
	return center.Plus(Position{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	})
}
