package geometry

import "math"

// SignedArea returns the shoelace area of the shape's polygon. Positive means
// counterclockwise in a y-up frame.
func SignedArea(s Shape) float64 {
	switch v := s.(type) {
	case Circle:
		return math.Pi * v.Radius * v.Radius
	case Rectangle:
		r := v.normalized()
		return r.W * r.H
	case Polygon:
		return shoelace(v.Vertices)
	default:
		return 0
	}
}

// Area returns the absolute area of a shape. Circles report the area of
// their polygon approximation so ratios against IntersectionArea stay
// consistent.
func Area(s Shape) float64 {
	if c, ok := s.(Circle); ok {
		return math.Abs(shoelace(approximateCircle(c.Center, c.Radius, circleSegments).Vertices))
	}
	return math.Abs(SignedArea(s))
}

func shoelace(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i].X * pts[j].Y
		area -= pts[j].X * pts[i].Y
	}
	return area / 2
}

// ensureCCW returns the vertices ordered with positive shoelace area.
func ensureCCW(pts []Point) []Point {
	if shoelace(pts) >= 0 {
		return pts
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// isConvex ignores collinear runs; a polygon with no turn at all is not convex.
func isConvex(pts []Point) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	sign := 0
	for i := 0; i < n; i++ {
		a, b, c := pts[i], pts[(i+1)%n], pts[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return sign != 0
}
