// Package geometry builds and measures the world-space shapes used by
// targeting queries: containment, bounding boxes, areas and the area of the
// intersection of two shapes.
package geometry

import "math"

// circleSegments is the resolution used when a circle is turned into a polygon.
const circleSegments = 64

// Shape is one of Circle, Rectangle or Polygon. The set is closed; functions
// in this package switch on the concrete type.
type Shape interface {
	isShape()
}

// Circle is a disc with an inclusive boundary.
type Circle struct {
	Center Point
	Radius float64
}

// Rectangle is an axis-aligned rectangle anchored at its top-left corner.
// Negative sizes are normalized when the rectangle is measured.
type Rectangle struct {
	X, Y, W, H float64
}

// Polygon is a closed simple polygon given by its vertices in order.
type Polygon struct {
	Vertices []Point
}

func (Circle) isShape()    {}
func (Rectangle) isShape() {}
func (Polygon) isShape()   {}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point) Polygon {
	return Polygon{Vertices: pts}
}

func (r Rectangle) normalized() Rectangle {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Translate returns the shape moved by (dx, dy). Polygon vertices are copied,
// the input is never modified.
func Translate(s Shape, dx, dy float64) Shape {
	switch v := s.(type) {
	case Circle:
		return Circle{Center: v.Center.Add(Pt(dx, dy)), Radius: v.Radius}
	case Rectangle:
		return Rectangle{X: v.X + dx, Y: v.Y + dy, W: v.W, H: v.H}
	case Polygon:
		verts := make([]Point, len(v.Vertices))
		for i, p := range v.Vertices {
			verts[i] = Point{p.X + dx, p.Y + dy}
		}
		return Polygon{Vertices: verts}
	default:
		return s
	}
}

// ToPolygon converts any shape to a polygon. Circles are approximated with
// circleSegments vertices in counterclockwise order.
func ToPolygon(s Shape) Polygon {
	switch v := s.(type) {
	case Circle:
		return approximateCircle(v.Center, v.Radius, circleSegments)
	case Rectangle:
		r := v.normalized()
		return NewPolygon(
			Pt(r.X, r.Y),
			Pt(r.X+r.W, r.Y),
			Pt(r.X+r.W, r.Y+r.H),
			Pt(r.X, r.Y+r.H),
		)
	case Polygon:
		return v
	default:
		return Polygon{}
	}
}

// Center returns the reference point of a shape: the circle center, the
// rectangle middle, or the polygon centroid.
func Center(s Shape) Point {
	switch v := s.(type) {
	case Circle:
		return v.Center
	case Rectangle:
		r := v.normalized()
		return Pt(r.X+r.W/2, r.Y+r.H/2)
	case Polygon:
		return centroid(v.Vertices)
	default:
		return Point{}
	}
}

// BoundingRadius returns the distance from Center(s) to the farthest point of s.
func BoundingRadius(s Shape) float64 {
	switch v := s.(type) {
	case Circle:
		return math.Abs(v.Radius)
	case Rectangle:
		r := v.normalized()
		return math.Hypot(r.W, r.H) / 2
	case Polygon:
		c := centroid(v.Vertices)
		maxDist := 0.0
		for _, p := range v.Vertices {
			maxDist = math.Max(maxDist, c.Distance(p))
		}
		return maxDist
	default:
		return 0
	}
}

func approximateCircle(center Point, radius float64, segments int) Polygon {
	if segments < 3 {
		segments = 3
	}
	pts := make([]Point, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return Polygon{Vertices: pts}
}

func centroid(pts []Point) Point {
	n := len(pts)
	if n == 0 {
		return Point{}
	}
	a := shoelace(pts)
	if n < 3 || math.Abs(a) < 1e-12 {
		sum := Point{}
		for _, p := range pts {
			sum = sum.Add(p)
		}
		return sum.Scale(1.0 / float64(n))
	}
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
		cx += (pts[i].X + pts[j].X) * cross
		cy += (pts[i].Y + pts[j].Y) * cross
	}
	f := 1.0 / (6.0 * a)
	return Point{cx * f, cy * f}
}
