package domain

// Segment is the straight line travelled between two positions.
type Segment struct {
	A, B Position
}

// Confined reports whether p lies strictly inside b on both axes.
func Confined(p Position, b Bounds) bool {
	return b.Min.X < p.X && p.X < b.Max.X && b.Min.Y < p.Y && p.Y < b.Max.Y
}

// DistanceSquared is only ever compared, so the square root is skipped.
func DistanceSquared(a, b Position) float64 {
	d := a.Minus(b)
	return d.X*d.X + d.Y*d.Y
}

// orientation of c relative to the directed line a->b:
// 1 counter-clockwise, -1 clockwise, 0 collinear.
func orientation(a, b, c Position) int {
	v := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// onSegment assumes c is collinear with s.
func onSegment(s Segment, c Position) bool {
	return min(s.A.X, s.B.X) <= c.X && c.X <= max(s.A.X, s.B.X) &&
		min(s.A.Y, s.B.Y) <= c.Y && c.Y <= max(s.A.Y, s.B.Y)
}

// SegmentsIntersect reports whether two closed segments share any point.
// Touching endpoints and collinear overlap both count.
func SegmentsIntersect(s1, s2 Segment) bool {
	o1 := orientation(s1.A, s1.B, s2.A)
	o2 := orientation(s1.A, s1.B, s2.B)
	o3 := orientation(s2.A, s2.B, s1.A)
	o4 := orientation(s2.A, s2.B, s1.B)

	if o1 != o2 && o3 != o4 {
		return true
	}

	return (o1 == 0 && onSegment(s1, s2.A)) ||
		(o2 == 0 && onSegment(s1, s2.B)) ||
		(o3 == 0 && onSegment(s2, s1.A)) ||
		(o4 == 0 && onSegment(s2, s1.B))
}

// CrossesAnyZone reports whether seg touches an edge of any zone.
func CrossesAnyZone(seg Segment, zones []Zone) bool {
	for _, z := range zones {
		n := len(z.Vertices)
		for i := 0; i < n; i++ {
			edge := Segment{A: z.Vertices[i], B: z.Vertices[(i+1)%n]}
			if SegmentsIntersect(seg, edge) {
				return true
			}
		}
	}
	return false
}
