package targeting_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-targeting/internal/entities"
	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	"github.com/KirkDiggler/rpg-targeting/internal/grid"
	"github.com/KirkDiggler/rpg-targeting/internal/targeting"
	"github.com/KirkDiggler/rpg-targeting/internal/testutils/builders"
)

type EngineTestSuite struct {
	suite.Suite
	engine *targeting.Engine
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	engine, err := targeting.New(&targeting.Config{
		Defaults: targeting.DefaultDefaults(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
	s.engine = engine
}

func methodOpts(m targeting.Method) *targeting.Options {
	return &targeting.Options{
		CollisionMethod:  targeting.Ptr(m),
		PercentageOutput: targeting.Ptr(true),
	}
}

func (s *EngineTestSuite) ratio(scene *entities.Scene, tokenID, templateID string, opts *targeting.Options) float64 {
	token, ok := scene.Token(tokenID)
	s.Require().True(ok)
	tmpl, ok := scene.Template(templateID)
	s.Require().True(ok)

	result, err := s.engine.Collides(token, tmpl, opts)
	s.Require().NoError(err)
	return result.Ratio
}

func (s *EngineTestSuite) TestNewRejectsInvalidDefaults() {
	d := targeting.DefaultDefaults()
	d.Tolerance = 0

	engine, err := targeting.New(&targeting.Config{Defaults: d})
	s.Require().Error(err)
	s.Nil(engine)
	s.Contains(err.Error(), "invalid config")

	_, err = targeting.New(nil)
	s.Error(err)
}

// Scenario A: token centered on a circle template.
func (s *EngineTestSuite) TestTokenAtCircleCenter() {
	scene := builders.NewSceneBuilder().
		WithToken("goblin", 950, 950, 1, 1).
		WithCircle("fireball", 1000, 1000, 50).
		Build()

	s.Equal(1.0, s.ratio(scene, "goblin", "fireball", methodOpts(targeting.MethodPointsCenter)))
}

// Scenario B: token well outside the template.
func (s *EngineTestSuite) TestTokenOutsideCircle() {
	scene := builders.NewSceneBuilder().
		WithToken("goblin", 1500, 1500, 1, 1).
		WithCircle("fireball", 500, 500, 10).
		Build()

	for _, m := range []targeting.Method{
		targeting.MethodPointsCenter,
		targeting.MethodGridSpacesPoints,
		targeting.MethodAreaIntersection,
	} {
		s.Run(string(m), func() {
			s.Equal(0.0, s.ratio(scene, "goblin", "fireball", methodOpts(m)))

			token, _ := scene.Token("goblin")
			tmpl, _ := scene.Template("fireball")
			result, err := s.engine.Collides(token, tmpl, &targeting.Options{CollisionMethod: targeting.Ptr(m)})
			s.Require().NoError(err)
			s.Equal(false, result.Value())
		})
	}
}

// Scenario C: rectangle template over half of a 2x2 token.
func (s *EngineTestSuite) TestRectangleCoversHalfToken() {
	scene := builders.NewSceneBuilder().
		WithToken("ogre", 400, 400, 2, 2).
		WithRectangle("wall", 400, 400, 5, 10).
		Build()

	opts := methodOpts(targeting.MethodAreaIntersection)
	opts.ConsiderTemplateRatio = targeting.Ptr(false)
	s.InDelta(0.5, s.ratio(scene, "ogre", "wall", opts), 1e-9)

	opts.ConsiderTemplateRatio = targeting.Ptr(true)
	s.InDelta(1.0, s.ratio(scene, "ogre", "wall", opts), 1e-9)
}

// Scenario D: tolerance outside (0,1] is a configuration error.
func (s *EngineTestSuite) TestToleranceOutOfRangeRejected() {
	scene := builders.NewSceneBuilder().
		WithToken("goblin", 950, 950, 1, 1).
		WithCircle("fireball", 1000, 1000, 20).
		Build()
	token, _ := scene.Token("goblin")
	tmpl, _ := scene.Template("fireball")

	for _, tolerance := range []float64{0, -0.25, 1.5} {
		result, err := s.engine.Collides(token, tmpl, &targeting.Options{Tolerance: targeting.Ptr(tolerance)})
		s.Require().Error(err)
		s.Nil(result)
		s.True(errors.IsInvalidArgument(err))
		s.Equal(targeting.FieldTolerance, errors.GetField(err))
	}

	_, err := s.engine.TokensIn(tmpl, &targeting.Options{Tolerance: targeting.Ptr(0.0)})
	s.True(errors.IsInvalidArgument(err))

	result, err := s.engine.Collides(token, tmpl, &targeting.Options{Tolerance: targeting.Ptr(1.0)})
	s.Require().NoError(err)
	s.True(result.Covered)
}

// Scenario E: token and template on different scenes.
func (s *EngineTestSuite) TestCrossSceneRejected() {
	first := builders.NewSceneBuilder().WithID("scene-a").WithToken("goblin", 950, 950, 1, 1).Build()
	second := builders.NewSceneBuilder().WithID("scene-b").WithCircle("fireball", 1000, 1000, 20).Build()

	result, err := s.engine.Collides(first.Tokens[0], second.Templates[0], nil)
	s.Require().Error(err)
	s.Nil(result)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("scene", errors.GetField(err))
}

func (s *EngineTestSuite) TestUnknownEnumsRejected() {
	scene := builders.NewSceneBuilder().
		WithToken("goblin", 950, 950, 1, 1).
		WithCircle("fireball", 1000, 1000, 20).
		Build()

	testCases := []struct {
		name  string
		opts  *targeting.Options
		field string
	}{
		{
			name:  "method",
			opts:  &targeting.Options{CollisionMethod: targeting.Ptr(targeting.Method("CORNERS"))},
			field: targeting.FieldCollisionMethod,
		},
		{
			name:  "token shape",
			opts:  &targeting.Options{TokenCollisionShape: targeting.Ptr(targeting.TokenShapeKind("HEXAGON"))},
			field: targeting.FieldTokenCollisionShape,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.engine.Collides(scene.Tokens[0], scene.Templates[0], tc.opts)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Equal(tc.field, errors.GetField(err))
		})
	}
}

func (s *EngineTestSuite) TestMissingInputsRejected() {
	scene := builders.NewSceneBuilder().
		WithToken("goblin", 950, 950, 1, 1).
		WithCircle("fireball", 1000, 1000, 20).
		Build()

	_, err := s.engine.Collides(nil, scene.Templates[0], nil)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("token", errors.GetField(err))

	_, err = s.engine.Collides(scene.Tokens[0], nil, nil)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("template", errors.GetField(err))

	orphan := &entities.Token{ID: "orphan", Width: 1, Height: 1}
	_, err = s.engine.Collides(orphan, scene.Templates[0], nil)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("token.scene", errors.GetField(err))
}

func (s *EngineTestSuite) TestUnsupportedShapeKind() {
	scene := builders.NewSceneBuilder().
		WithToken("goblin", 950, 950, 1, 1).
		WithTemplate("aura", 1000, 1000, entities.TemplateShape{Kind: "aura", Distance: 10}).
		Build()

	_, err := s.engine.Collides(scene.Tokens[0], scene.Templates[0], nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("shape.kind", errors.GetField(err))
}

// Each method produces its own ratio; no method falls through to another.
func (s *EngineTestSuite) TestMethodsDoNotFallThrough() {
	scene := builders.NewSceneBuilder().
		WithToken("ogre", 400, 400, 2, 2).
		WithRectangle("sliver", 400, 400, 3.75, 10).
		Build()

	points := s.ratio(scene, "ogre", "sliver", methodOpts(targeting.MethodPointsCenter))
	cells := s.ratio(scene, "ogre", "sliver", methodOpts(targeting.MethodGridSpacesPoints))
	area := s.ratio(scene, "ogre", "sliver", methodOpts(targeting.MethodAreaIntersection))

	s.Equal(0.0, points)
	s.Equal(0.5, cells)
	s.InDelta(0.375, area, 1e-9)
}

func (s *EngineTestSuite) TestGridSpacesPoints() {
	scene := builders.NewSceneBuilder().
		WithToken("ogre", 400, 400, 2, 2).
		WithRectangle("wall", 400, 400, 5, 10).
		Build()

	for _, shape := range []targeting.TokenShapeKind{targeting.TokenShapeRectangle, targeting.TokenShapeCircle} {
		s.Run(string(shape), func() {
			opts := methodOpts(targeting.MethodGridSpacesPoints)
			opts.TokenCollisionShape = targeting.Ptr(shape)
			s.Equal(0.5, s.ratio(scene, "ogre", "wall", opts))
		})
	}
}

func (s *EngineTestSuite) TestGridSpacesPointsOnHexGrid() {
	scene := builders.NewSceneBuilder().
		WithGrid(grid.TypeHex, 100).
		WithToken("goblin", 450, 450, 1, 1).
		WithCircle("fireball", 500, 500, 20).
		Build()

	s.Equal(1.0, s.ratio(scene, "goblin", "fireball", methodOpts(targeting.MethodGridSpacesPoints)))
}

func (s *EngineTestSuite) TestGridlessSceneHasNoCells() {
	scene := builders.NewSceneBuilder().
		WithGrid(grid.TypeGridless, 100).
		WithToken("goblin", 950, 950, 1, 1).
		WithCircle("fireball", 1000, 1000, 20).
		Build()

	s.Equal(0.0, s.ratio(scene, "goblin", "fireball", methodOpts(targeting.MethodGridSpacesPoints)))
	s.Equal(1.0, s.ratio(scene, "goblin", "fireball", methodOpts(targeting.MethodPointsCenter)))
}

func (s *EngineTestSuite) TestCenterOnEdgeIsContained() {
	// radius 10ft is 200px; token center lands exactly on the circle
	scene := builders.NewSceneBuilder().
		WithToken("goblin", 1150, 950, 1, 1).
		WithCircle("fireball", 1000, 1000, 10).
		Build()

	s.Equal(1.0, s.ratio(scene, "goblin", "fireball", methodOpts(targeting.MethodPointsCenter)))
}

func (s *EngineTestSuite) TestRatioIgnoresToleranceAndOutputMode() {
	scene := builders.NewSceneBuilder().
		WithToken("ogre", 400, 400, 2, 2).
		WithCircle("fireball", 420, 430, 12).
		Build()
	token, tmpl := scene.Tokens[0], scene.Templates[0]

	for _, m := range []targeting.Method{
		targeting.MethodPointsCenter,
		targeting.MethodGridSpacesPoints,
		targeting.MethodAreaIntersection,
	} {
		s.Run(string(m), func() {
			var ratios []float64
			for _, tolerance := range []float64{0.01, 0.5, 1} {
				for _, pct := range []bool{true, false} {
					result, err := s.engine.Collides(token, tmpl, &targeting.Options{
						CollisionMethod:  targeting.Ptr(m),
						Tolerance:        targeting.Ptr(tolerance),
						PercentageOutput: targeting.Ptr(pct),
					})
					s.Require().NoError(err)
					s.Equal(result.Ratio >= tolerance, result.Covered)
					ratios = append(ratios, result.Ratio)
				}
			}
			for _, r := range ratios {
				s.Equal(ratios[0], r)
			}
		})
	}
}

func (s *EngineTestSuite) TestDeterministic() {
	scene := builders.NewSceneBuilder().
		WithToken("ogre", 433.3, 401.7, 1.5, 2.25).
		WithTemplate("cone", 300, 300, entities.TemplateShape{
			Kind: entities.ShapeCone, Distance: 20, Angle: 53.13, Direction: 37,
		}).
		Build()

	for _, m := range []targeting.Method{
		targeting.MethodPointsCenter,
		targeting.MethodGridSpacesPoints,
		targeting.MethodAreaIntersection,
	} {
		first := s.ratio(scene, "ogre", "cone", methodOpts(m))
		for i := 0; i < 5; i++ {
			s.Equal(first, s.ratio(scene, "ogre", "cone", methodOpts(m)))
		}
	}
}

func (s *EngineTestSuite) TestRatioBounds() {
	scene := builders.NewSceneBuilder().
		WithToken("ogre", 400, 400, 2, 2).
		WithToken("speck", 500, 500, 0, 0).
		WithCircle("huge", 500, 500, 100).
		WithCircle("small", 500, 500, 2).
		Build()

	for _, tokenID := range []string{"ogre", "speck"} {
		for _, templateID := range []string{"huge", "small"} {
			for _, m := range []targeting.Method{targeting.MethodGridSpacesPoints, targeting.MethodAreaIntersection} {
				for _, shape := range []targeting.TokenShapeKind{targeting.TokenShapeCircle, targeting.TokenShapeRectangle} {
					opts := methodOpts(m)
					opts.TokenCollisionShape = targeting.Ptr(shape)
					opts.ConsiderTemplateRatio = targeting.Ptr(true)
					r := s.ratio(scene, tokenID, templateID, opts)
					s.GreaterOrEqual(r, 0.0)
					s.LessOrEqual(r, 1.0)
				}
			}
		}
	}

	// zero-area token is defined as 0 even when the template covers its cell
	for _, m := range []targeting.Method{targeting.MethodGridSpacesPoints, targeting.MethodAreaIntersection} {
		for _, shape := range []targeting.TokenShapeKind{targeting.TokenShapeCircle, targeting.TokenShapeRectangle} {
			opts := methodOpts(m)
			opts.TokenCollisionShape = targeting.Ptr(shape)
			opts.ConsiderTemplateRatio = targeting.Ptr(false)
			s.Equal(0.0, s.ratio(scene, "speck", "huge", opts), "%s/%s", m, shape)
		}
	}
}

func (s *EngineTestSuite) TestGridSpacesPointsCountsCenterCellOutsideFootprint() {
	// the token sits in the corner of cell (0,0), clear of that cell's center
	scene := builders.NewSceneBuilder().
		WithToken("mote", 99, 99, 0.01, 0.01).
		WithCircle("spark", 50, 50, 1).
		Build()

	opts := methodOpts(targeting.MethodGridSpacesPoints)
	opts.TokenCollisionShape = targeting.Ptr(targeting.TokenShapeRectangle)
	s.Equal(1.0, s.ratio(scene, "mote", "spark", opts))

	opts = methodOpts(targeting.MethodAreaIntersection)
	opts.TokenCollisionShape = targeting.Ptr(targeting.TokenShapeRectangle)
	s.Equal(0.0, s.ratio(scene, "mote", "spark", opts))
}

func (s *EngineTestSuite) TestDisjointBoundsGiveZero() {
	scene := builders.NewSceneBuilder().
		WithToken("goblin", 0, 0, 1, 1).
		WithRectangle("far", 1800, 1800, 5, 5).
		Build()

	for _, m := range []targeting.Method{
		targeting.MethodPointsCenter,
		targeting.MethodGridSpacesPoints,
		targeting.MethodAreaIntersection,
	} {
		for _, shape := range []targeting.TokenShapeKind{targeting.TokenShapeCircle, targeting.TokenShapeRectangle} {
			opts := methodOpts(m)
			opts.TokenCollisionShape = targeting.Ptr(shape)
			opts.ConsiderTemplateRatio = targeting.Ptr(true)
			s.Equal(0.0, s.ratio(scene, "goblin", "far", opts))
		}
	}
}

func (s *EngineTestSuite) TestTokensIn() {
	scene := builders.NewSceneBuilder().
		WithToken("inside", 950, 950, 1, 1).
		WithToken("edge", 1150, 950, 1, 1).
		WithToken("outside", 1700, 1700, 1, 1).
		WithCircle("fireball", 1000, 1000, 10).
		Build()

	// a token pointing at another scene is skipped, not fatal
	other := builders.NewSceneBuilder().WithID("scene-other").Build()
	scene.Tokens = append(scene.Tokens, &entities.Token{ID: "stray", X: 950, Y: 950, Width: 1, Height: 1, Scene: other})

	tokens, err := s.engine.TokensIn(scene.Templates[0], &targeting.Options{
		CollisionMethod:  targeting.Ptr(targeting.MethodPointsCenter),
		PercentageOutput: targeting.Ptr(true),
	})
	s.Require().NoError(err)

	ids := make([]string, len(tokens))
	for i, t := range tokens {
		ids[i] = t.ID
	}
	s.ElementsMatch([]string{"inside", "edge"}, ids)
}

func (s *EngineTestSuite) TestTokensInAppliesTolerance() {
	scene := builders.NewSceneBuilder().
		WithToken("ogre", 400, 400, 2, 2).
		WithRectangle("wall", 400, 400, 5, 10).
		Build()
	opts := &targeting.Options{CollisionMethod: targeting.Ptr(targeting.MethodAreaIntersection)}

	opts.Tolerance = targeting.Ptr(0.5)
	tokens, err := s.engine.TokensIn(scene.Templates[0], opts)
	s.Require().NoError(err)
	s.Len(tokens, 1)

	opts.Tolerance = targeting.Ptr(0.6)
	tokens, err = s.engine.TokensIn(scene.Templates[0], opts)
	s.Require().NoError(err)
	s.Empty(tokens)
}

func (s *EngineTestSuite) TestTemplatesContaining() {
	scene := builders.NewSceneBuilder().
		WithToken("goblin", 950, 950, 1, 1).
		WithCircle("fireball", 1000, 1000, 10).
		WithRectangle("wall", 0, 0, 5, 5).
		WithTemplate("aura", 1000, 1000, entities.TemplateShape{Kind: "aura"}).
		WithTemplate("cone", 900, 1000, entities.TemplateShape{
			Kind: entities.ShapeCone, Distance: 15, Angle: 90, Direction: 0,
		}).
		Build()

	templates, err := s.engine.TemplatesContaining(scene.Tokens[0], &targeting.Options{
		CollisionMethod: targeting.Ptr(targeting.MethodPointsCenter),
	})
	s.Require().NoError(err)

	ids := make([]string, len(templates))
	for i, t := range templates {
		ids[i] = t.ID
	}
	s.ElementsMatch([]string{"fireball", "cone"}, ids)
}

func (s *EngineTestSuite) TestSetDefaults() {
	scene := builders.NewSceneBuilder().
		WithToken("ogre", 400, 400, 2, 2).
		WithRectangle("sliver", 400, 400, 3.75, 10).
		Build()

	d := targeting.DefaultDefaults()
	d.CollisionMethod = targeting.MethodAreaIntersection
	d.PercentageOutput = true
	s.Require().NoError(s.engine.SetDefaults(d))
	s.Equal(d, s.engine.Defaults())

	result, err := s.engine.Collides(scene.Tokens[0], scene.Templates[0], nil)
	s.Require().NoError(err)
	s.InDelta(0.375, result.Value(), 1e-9)

	bad := d
	bad.Tolerance = -1
	err = s.engine.SetDefaults(bad)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(d, s.engine.Defaults())
}
