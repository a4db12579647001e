package geometry

import "math"

// epsilon absorbs floating point noise in boundary tests, in pixels.
const epsilon = 1e-7

// Contains reports whether p lies inside s or on its boundary.
func Contains(s Shape, p Point) bool {
	switch v := s.(type) {
	case Circle:
		return v.Center.Distance(p) <= math.Abs(v.Radius)+epsilon
	case Rectangle:
		r := v.normalized()
		return p.X >= r.X-epsilon && p.X <= r.X+r.W+epsilon &&
			p.Y >= r.Y-epsilon && p.Y <= r.Y+r.H+epsilon
	case Polygon:
		return polygonContains(v.Vertices, p)
	default:
		return false
	}
}

func polygonContains(verts []Point, p Point) bool {
	n := len(verts)
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if onSegment(p, verts[i], verts[(i+1)%n]) {
			return true
		}
	}
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := verts[i], verts[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

func onSegment(p, a, b Point) bool {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq < epsilon*epsilon {
		return p.Distance(a) <= epsilon
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/lenSq))
	return p.Distance(a.Lerp(b, t)) <= epsilon
}
