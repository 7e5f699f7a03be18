package domain

import (
	"math"

	"github.com/jbeda/geom"
)

// Immutable geographic position. X carries longitude, Y carries latitude.
type Position = geom.Coord

func NewPosition(lon, lat float64) Position { return Position{X: lon, Y: lat} }

// Finite reports whether both coordinates are real numbers.
func Finite(p Position) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Bounds is the rectangular confinement area. Min holds the lowest
// longitude/latitude, Max the highest.
type Bounds = geom.Rect

func NewBounds(minLon, maxLon, minLat, maxLat float64) Bounds {
	return Bounds{
		Min: NewPosition(minLon, minLat),
		Max: NewPosition(maxLon, maxLat),
	}
}

// Zone is a no-fly polygon. Edges join consecutive vertices and the last
// vertex back to the first.
type Zone struct {
	Vertices []Position
}
