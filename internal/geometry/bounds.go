package geometry

import "math"

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Overlaps reports whether two boxes share at least one point. Touching
// edges count as overlap because containment tests are edge-inclusive.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX &&
		b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// Union returns the smallest box holding both boxes.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// BoundsOf returns the bounding box of a shape.
func BoundsOf(s Shape) Bounds {
	switch v := s.(type) {
	case Circle:
		r := math.Abs(v.Radius)
		return Bounds{v.Center.X - r, v.Center.Y - r, v.Center.X + r, v.Center.Y + r}
	case Rectangle:
		r := v.normalized()
		return Bounds{r.X, r.Y, r.X + r.W, r.Y + r.H}
	case Polygon:
		return pointBounds(v.Vertices)
	default:
		return Bounds{}
	}
}

func pointBounds(pts []Point) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}
