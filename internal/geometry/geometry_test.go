package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-targeting/internal/geometry"
)

type GeometryTestSuite struct {
	suite.Suite
}

func TestGeometryTestSuite(t *testing.T) {
	suite.Run(t, new(GeometryTestSuite))
}

func (s *GeometryTestSuite) TestContains() {
	testCases := []struct {
		name   string
		shape  geometry.Shape
		point  geometry.Point
		expect bool
	}{
		{"circle center", geometry.Circle{Center: geometry.Pt(0, 0), Radius: 10}, geometry.Pt(0, 0), true},
		{"circle boundary", geometry.Circle{Center: geometry.Pt(0, 0), Radius: 10}, geometry.Pt(10, 0), true},
		{"circle outside", geometry.Circle{Center: geometry.Pt(0, 0), Radius: 10}, geometry.Pt(7.1, 7.1), false},
		{"rect corner", geometry.Rectangle{X: 0, Y: 0, W: 100, H: 50}, geometry.Pt(100, 50), true},
		{"rect interior", geometry.Rectangle{X: 0, Y: 0, W: 100, H: 50}, geometry.Pt(30, 20), true},
		{"rect outside", geometry.Rectangle{X: 0, Y: 0, W: 100, H: 50}, geometry.Pt(101, 20), false},
		{"negative rect", geometry.Rectangle{X: 100, Y: 50, W: -100, H: -50}, geometry.Pt(30, 20), true},
		{"polygon vertex", square(0, 0, 10), geometry.Pt(10, 10), true},
		{"polygon edge", square(0, 0, 10), geometry.Pt(5, 0), true},
		{"polygon outside", square(0, 0, 10), geometry.Pt(11, 5), false},
		{"concave notch", lShape(), geometry.Pt(15, 15), false},
		{"concave arm", lShape(), geometry.Pt(5, 15), true},
		{"degenerate polygon", geometry.NewPolygon(geometry.Pt(0, 0), geometry.Pt(10, 0)), geometry.Pt(5, 1), false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expect, geometry.Contains(tc.shape, tc.point))
		})
	}
}

func (s *GeometryTestSuite) TestBoundsOf() {
	s.Equal(geometry.Bounds{MinX: -5, MinY: 5, MaxX: 5, MaxY: 15},
		geometry.BoundsOf(geometry.Circle{Center: geometry.Pt(0, 10), Radius: 5}))
	s.Equal(geometry.Bounds{MinX: 0, MinY: 0, MaxX: 20, MaxY: 20}, geometry.BoundsOf(lShape()))
	s.Equal(geometry.Bounds{MinX: 10, MinY: 10, MaxX: 30, MaxY: 20},
		geometry.BoundsOf(geometry.Rectangle{X: 30, Y: 10, W: -20, H: 10}))
}

func (s *GeometryTestSuite) TestBoundsOverlapIsInclusive() {
	a := geometry.Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	s.True(a.Overlaps(geometry.Bounds{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20}))
	s.False(a.Overlaps(geometry.Bounds{MinX: 10.01, MinY: 0, MaxX: 20, MaxY: 10}))
	s.Equal(geometry.Bounds{MinX: 0, MinY: -5, MaxX: 12, MaxY: 10},
		a.Union(geometry.Bounds{MinX: 2, MinY: -5, MaxX: 12, MaxY: 3}))
}

func (s *GeometryTestSuite) TestTranslateCopiesPolygon() {
	poly := square(0, 0, 10)
	moved := geometry.Translate(poly, 5, -5).(geometry.Polygon)

	s.Equal(geometry.Pt(5, -5), moved.Vertices[0])
	s.Equal(geometry.Pt(0, 0), poly.Vertices[0])
}

func (s *GeometryTestSuite) TestArea() {
	s.InDelta(200.0, geometry.Area(geometry.Rectangle{W: 20, H: 10}), 1e-9)
	s.InDelta(300.0, geometry.Area(lShape()), 1e-9)

	circle := geometry.Area(geometry.Circle{Radius: 10})
	s.InDelta(math.Pi*100, circle, 2.0)
	s.Less(circle, math.Pi*100)
}

func (s *GeometryTestSuite) TestIntersectionArea() {
	testCases := []struct {
		name   string
		a, b   geometry.Shape
		expect float64
		delta  float64
	}{
		{
			name:   "disjoint",
			a:      geometry.Rectangle{X: 0, Y: 0, W: 10, H: 10},
			b:      geometry.Rectangle{X: 20, Y: 0, W: 10, H: 10},
			expect: 0,
		},
		{
			name:   "touching edge",
			a:      geometry.Rectangle{X: 0, Y: 0, W: 10, H: 10},
			b:      geometry.Rectangle{X: 10, Y: 0, W: 10, H: 10},
			expect: 0,
		},
		{
			name:   "half overlap",
			a:      geometry.Rectangle{X: 0, Y: 0, W: 10, H: 10},
			b:      geometry.Rectangle{X: 5, Y: 0, W: 10, H: 10},
			expect: 50,
		},
		{
			name:   "contained",
			a:      geometry.Rectangle{X: 2, Y: 2, W: 4, H: 4},
			b:      geometry.Rectangle{X: 0, Y: 0, W: 10, H: 10},
			expect: 16,
		},
		{
			name:   "concave subject convex clipper",
			a:      lShape(),
			b:      geometry.Rectangle{X: 0, Y: 0, W: 20, H: 20},
			expect: 300,
		},
		{
			name:   "convex subject concave clipper",
			a:      geometry.Rectangle{X: 10, Y: 0, W: 10, H: 20},
			b:      lShape(),
			expect: 100,
		},
		{
			name:   "both concave",
			a:      lShape(),
			b:      geometry.Translate(lShape(), 5, 5),
			expect: 125,
		},
		{
			name:   "circle in square",
			a:      geometry.Circle{Center: geometry.Pt(50, 50), Radius: 10},
			b:      geometry.Rectangle{X: 0, Y: 0, W: 100, H: 100},
			expect: geometry.Area(geometry.Circle{Radius: 10}),
			delta:  0.5,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			delta := tc.delta
			if delta == 0 {
				delta = 1e-6
			}
			s.InDelta(tc.expect, geometry.IntersectionArea(tc.a, tc.b), delta)
		})
	}
}

func (s *GeometryTestSuite) TestIntersectionAreaIsDeterministic() {
	a := geometry.Circle{Center: geometry.Pt(33.333, 41.7), Radius: 27.1}
	b := geometry.Translate(lShape(), 21.05, 19.9)

	first := geometry.IntersectionArea(a, b)
	for i := 0; i < 10; i++ {
		s.Equal(first, geometry.IntersectionArea(a, b))
	}
}

func (s *GeometryTestSuite) TestCone() {
	cone := geometry.Cone(100, 90, 0)

	s.Equal(geometry.Pt(0, 0), cone.Vertices[0])
	s.True(geometry.Contains(cone, geometry.Pt(50, 0)))
	s.True(geometry.Contains(cone, geometry.Pt(99, 0)))
	s.False(geometry.Contains(cone, geometry.Pt(-10, 0)))
	s.False(geometry.Contains(cone, geometry.Pt(10, 50)))
	s.InDelta(math.Pi*100*100/4, geometry.Area(cone), 150)
}

func (s *GeometryTestSuite) TestRay() {
	ray := geometry.Ray(100, 10, 90)

	s.True(geometry.Contains(ray, geometry.Pt(0, 50)))
	s.True(geometry.Contains(ray, geometry.Pt(5, 100)))
	s.False(geometry.Contains(ray, geometry.Pt(6, 50)))
	s.False(geometry.Contains(ray, geometry.Pt(0, -1)))
	s.InDelta(1000.0, geometry.Area(ray), 1e-6)
}

func (s *GeometryTestSuite) TestCenterAndBoundingRadius() {
	s.Equal(geometry.Pt(15, 10), geometry.Center(geometry.Rectangle{X: 10, Y: 5, W: 10, H: 10}))
	s.InDelta(5*math.Sqrt2, geometry.BoundingRadius(geometry.Rectangle{W: 10, H: 10}), 1e-9)

	c := geometry.Center(square(0, 0, 10))
	s.InDelta(5.0, c.X, 1e-9)
	s.InDelta(5.0, c.Y, 1e-9)
	s.InDelta(5*math.Sqrt2, geometry.BoundingRadius(square(0, 0, 10)), 1e-9)
}

func square(x, y, size float64) geometry.Polygon {
	return geometry.NewPolygon(
		geometry.Pt(x, y),
		geometry.Pt(x+size, y),
		geometry.Pt(x+size, y+size),
		geometry.Pt(x, y+size),
	)
}

// lShape is a 20x20 square with the bottom-right 10x10 quadrant removed.
func lShape() geometry.Polygon {
	return geometry.NewPolygon(
		geometry.Pt(0, 0),
		geometry.Pt(20, 0),
		geometry.Pt(20, 10),
		geometry.Pt(10, 10),
		geometry.Pt(10, 20),
		geometry.Pt(0, 20),
	)
}
