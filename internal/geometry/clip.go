package geometry

import "math"

// precision is the fixed-point scale applied to coordinates before clipping.
// Two hundredths of a pixel are indistinguishable on any grid in practice.
const precision = 100.0

// IntersectionArea returns the area shared by a and b in square pixels.
//
// Coordinates are scaled by precision and rounded before clipping so that
// repeated queries over the same inputs agree exactly. Convex clippers go
// through Sutherland-Hodgman directly; when both polygons are concave the
// clipper is ear-clipped into triangles and the pieces are summed.
func IntersectionArea(a, b Shape) float64 {
	subject := quantize(ToPolygon(a).Vertices)
	clipper := quantize(ToPolygon(b).Vertices)
	if len(subject) < 3 || len(clipper) < 3 {
		return 0
	}
	if !pointBounds(subject).Overlaps(pointBounds(clipper)) {
		return 0
	}

	if !isConvex(clipper) && isConvex(subject) {
		subject, clipper = clipper, subject
	}

	var area float64
	if isConvex(clipper) {
		area = math.Abs(shoelace(clipConvex(subject, clipper)))
	} else {
		for _, tri := range triangulate(clipper) {
			area += math.Abs(shoelace(clipConvex(subject, tri)))
		}
	}
	return area / (precision * precision)
}

func quantize(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		q := Point{math.Round(p.X * precision), math.Round(p.Y * precision)}
		if len(out) > 0 && out[len(out)-1] == q {
			continue
		}
		out = append(out, q)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// clipConvex clips subject against a convex clipper using Sutherland-Hodgman.
func clipConvex(subject, clipper []Point) []Point {
	clip := ensureCCW(clipper)
	if math.Abs(shoelace(clip)) == 0 {
		return nil
	}

	output := subject
	n := len(clip)
	for i := 0; i < n && len(output) > 0; i++ {
		edgeStart := clip[i]
		edgeEnd := clip[(i+1)%n]

		input := output
		output = make([]Point, 0, len(input)+2)

		for j := 0; j < len(input); j++ {
			current := input[j]
			previous := input[(j+len(input)-1)%len(input)]

			currentInside := isInsideEdge(current, edgeStart, edgeEnd)
			previousInside := isInsideEdge(previous, edgeStart, edgeEnd)

			if currentInside {
				if !previousInside {
					output = append(output, lineIntersection(previous, current, edgeStart, edgeEnd))
				}
				output = append(output, current)
			} else if previousInside {
				output = append(output, lineIntersection(previous, current, edgeStart, edgeEnd))
			}
		}
	}
	return output
}

// isInsideEdge reports whether p is on the left of (or on) the directed edge.
func isInsideEdge(p, edgeStart, edgeEnd Point) bool {
	return edgeEnd.Sub(edgeStart).Cross(p.Sub(edgeStart)) >= 0
}

func lineIntersection(p1, p2, p3, p4 Point) Point {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.Cross(d2)
	if denom == 0 {
		return p1
	}
	t := p3.Sub(p1).Cross(d2) / denom
	return p1.Add(d1.Scale(t))
}

// triangulate ear-clips a simple polygon into counterclockwise triangles.
func triangulate(pts []Point) [][]Point {
	verts := append([]Point(nil), ensureCCW(pts)...)
	var tris [][]Point

	for len(verts) > 3 {
		n := len(verts)
		clipped := false
		for i := 0; i < n; i++ {
			prev, cur, next := verts[(i+n-1)%n], verts[i], verts[(i+1)%n]
			turn := cur.Sub(prev).Cross(next.Sub(cur))
			if turn == 0 {
				// collinear vertex, drop it
				verts = append(verts[:i], verts[i+1:]...)
				clipped = true
				break
			}
			if turn < 0 || anyInsideTriangle(verts, prev, cur, next) {
				continue
			}
			tris = append(tris, []Point{prev, cur, next})
			verts = append(verts[:i], verts[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			break
		}
	}
	if len(verts) == 3 && shoelace(verts) > 0 {
		tris = append(tris, verts)
	}
	return tris
}

func anyInsideTriangle(verts []Point, a, b, c Point) bool {
	for _, p := range verts {
		if p == a || p == b || p == c {
			continue
		}
		if isInsideEdge(p, a, b) && isInsideEdge(p, b, c) && isInsideEdge(p, c, a) {
			return true
		}
	}
	return false
}
