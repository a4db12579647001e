package geometry

import "math"

// Cone builds a circular sector with its apex at the origin. Angles are in
// degrees, direction 0 points along +X and grows clockwise on screen.
func Cone(distance, angle, direction float64) Polygon {
	if angle >= 360 {
		return approximateCircle(Point{}, distance, circleSegments)
	}
	segments := int(math.Ceil(angle / 360 * circleSegments))
	if segments < 1 {
		segments = 1
	}
	start := degToRad(direction - angle/2)
	step := degToRad(angle) / float64(segments)

	pts := make([]Point, 0, segments+2)
	pts = append(pts, Point{})
	for i := 0; i <= segments; i++ {
		a := start + step*float64(i)
		pts = append(pts, Point{distance * math.Cos(a), distance * math.Sin(a)})
	}
	return Polygon{Vertices: pts}
}

// Ray builds a rectangle of the given width extending distance pixels from
// the origin along direction degrees. The origin sits on the middle of the
// near edge.
func Ray(distance, width, direction float64) Polygon {
	rad := degToRad(direction)
	along := Point{math.Cos(rad), math.Sin(rad)}
	across := Point{-along.Y, along.X}.Scale(width / 2)
	tip := along.Scale(distance)

	return NewPolygon(
		across,
		tip.Add(across),
		tip.Sub(across),
		across.Scale(-1),
	)
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
