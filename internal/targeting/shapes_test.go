package targeting_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-targeting/internal/entities"
	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	"github.com/KirkDiggler/rpg-targeting/internal/geometry"
	"github.com/KirkDiggler/rpg-targeting/internal/targeting"
	"github.com/KirkDiggler/rpg-targeting/internal/testutils/builders"
)

type ShapesTestSuite struct {
	suite.Suite
	scene *entities.Scene
}

func TestShapesTestSuite(t *testing.T) {
	suite.Run(t, new(ShapesTestSuite))
}

func (s *ShapesTestSuite) SetupTest() {
	s.scene = builders.NewSceneBuilder().
		WithToken("ogre", 200, 300, 2, 1).
		WithCircle("circle", 500, 500, 10).
		WithRectangle("rect", 100, 100, 5, 10).
		WithTemplate("poly", 50, 60, entities.TemplateShape{
			Kind:   entities.ShapePolygon,
			Points: []entities.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}},
		}).
		WithTemplate("cone", 0, 0, entities.TemplateShape{
			Kind: entities.ShapeCone, Distance: 15, Angle: 60, Direction: 90,
		}).
		WithTemplate("ray", 1000, 1000, entities.TemplateShape{
			Kind: entities.ShapeRay, Distance: 30, Width: 5, Direction: 180,
		}).
		WithTemplate("triangle", 0, 0, entities.TemplateShape{
			Kind:   entities.ShapePolygon,
			Points: []entities.Point{{X: 0, Y: 0}, {X: 100, Y: 0}},
		}).
		WithTemplate("mystery", 0, 0, entities.TemplateShape{Kind: "star"}).
		Build()
}

func (s *ShapesTestSuite) template(id string) *entities.Template {
	t, ok := s.scene.Template(id)
	s.Require().True(ok)
	return t
}

func (s *ShapesTestSuite) TestWorldShapeCircle() {
	shape, err := targeting.WorldShape(s.template("circle"))
	s.Require().NoError(err)
	s.Equal(geometry.Circle{Center: geometry.Pt(500, 500), Radius: 200}, shape)
}

func (s *ShapesTestSuite) TestWorldShapeRectangle() {
	shape, err := targeting.WorldShape(s.template("rect"))
	s.Require().NoError(err)
	s.Equal(geometry.Rectangle{X: 100, Y: 100, W: 100, H: 200}, shape)
}

func (s *ShapesTestSuite) TestWorldShapePolygonCopiesVertices() {
	tmpl := s.template("poly")

	shape, err := targeting.WorldShape(tmpl)
	s.Require().NoError(err)
	poly := shape.(geometry.Polygon)
	s.Equal([]geometry.Point{geometry.Pt(50, 60), geometry.Pt(150, 60), geometry.Pt(50, 160)}, poly.Vertices)

	poly.Vertices[0] = geometry.Pt(-1, -1)
	s.Equal(entities.Point{X: 0, Y: 0}, tmpl.Shape.Points[0])
}

func (s *ShapesTestSuite) TestWorldShapeCone() {
	shape, err := targeting.WorldShape(s.template("cone"))
	s.Require().NoError(err)

	// pointing down the screen, 300px long
	s.True(geometry.Contains(shape, geometry.Pt(0, 290)))
	s.False(geometry.Contains(shape, geometry.Pt(0, 310)))
	s.False(geometry.Contains(shape, geometry.Pt(200, 100)))
}

func (s *ShapesTestSuite) TestWorldShapeRay() {
	shape, err := targeting.WorldShape(s.template("ray"))
	s.Require().NoError(err)

	s.Equal(geometry.Bounds{MinX: 400, MinY: 950, MaxX: 1000, MaxY: 1050}, roundBounds(geometry.BoundsOf(shape)))
}

func (s *ShapesTestSuite) TestWorldShapeErrors() {
	testCases := []struct {
		name     string
		template *entities.Template
		field    string
	}{
		{name: "nil template", template: nil, field: "template"},
		{name: "no scene", template: &entities.Template{ID: "loose"}, field: "template.scene"},
		{name: "too few points", template: s.template("triangle"), field: "shape.points"},
		{name: "unsupported kind", template: s.template("mystery"), field: "shape.kind"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			shape, err := targeting.WorldShape(tc.template)
			s.Require().Error(err)
			s.Nil(shape)
			s.True(errors.IsInvalidArgument(err))
			s.Equal(tc.field, errors.GetField(err))
		})
	}
}

func (s *ShapesTestSuite) TestTokenShape() {
	token, ok := s.scene.Token("ogre")
	s.Require().True(ok)

	circle, err := targeting.TokenShape(token, targeting.TokenShapeCircle)
	s.Require().NoError(err)
	s.Equal(geometry.Circle{Center: geometry.Pt(300, 350), Radius: 100}, circle)

	rect, err := targeting.TokenShape(token, targeting.TokenShapeRectangle)
	s.Require().NoError(err)
	s.Equal(geometry.Rectangle{X: 200, Y: 300, W: 200, H: 100}, rect)

	_, err = targeting.TokenShape(token, "BLOB")
	s.True(errors.IsInvalidArgument(err))
}

func roundBounds(b geometry.Bounds) geometry.Bounds {
	r := func(v float64) float64 {
		if v < 0 {
			return float64(int(v - 0.5))
		}
		return float64(int(v + 0.5))
	}
	return geometry.Bounds{MinX: r(b.MinX), MinY: r(b.MinY), MaxX: r(b.MaxX), MaxY: r(b.MaxY)}
}
