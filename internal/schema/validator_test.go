package schema_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-targeting/internal/entities"
	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	"github.com/KirkDiggler/rpg-targeting/internal/schema"
	"github.com/KirkDiggler/rpg-targeting/internal/testutils/builders"
)

type ValidatorTestSuite struct {
	suite.Suite
	validator *schema.Validator
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	v, err := schema.NewSceneValidator()
	s.Require().NoError(err)
	s.validator = v
}

func (s *ValidatorTestSuite) TestValidScene() {
	scene := builders.NewSceneBuilder().
		WithToken("goblin", 100, 100, 1, 1).
		WithCircle("fireball", 150, 150, 20).
		WithTemplate("wedge", 0, 0, entities.TemplateShape{
			Kind:   entities.ShapePolygon,
			Points: []entities.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}},
		}).
		Build()

	s.NoError(s.validator.ValidateScene(scene))
}

func (s *ValidatorTestSuite) TestInvalidScenes() {
	testCases := []struct {
		name   string
		mutate func(*entities.Scene)
		field  string
	}{
		{
			name:   "unknown grid type",
			mutate: func(sc *entities.Scene) { sc.Grid.Type = "octagon" },
			field:  "grid.type",
		},
		{
			name:   "zero cell size",
			mutate: func(sc *entities.Scene) { sc.Grid.Size = 0 },
			field:  "grid.size",
		},
		{
			name:   "negative token width",
			mutate: func(sc *entities.Scene) { sc.Tokens[0].Width = -1 },
			field:  "tokens.0.width",
		},
		{
			name:   "unknown template kind",
			mutate: func(sc *entities.Scene) { sc.Templates[0].Shape.Kind = "aura" },
			field:  "templates.0.shape.kind",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			scene := builders.NewSceneBuilder().
				WithToken("goblin", 100, 100, 1, 1).
				WithCircle("fireball", 150, 150, 20).
				Build()
			tc.mutate(scene)

			err := s.validator.ValidateScene(scene)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Equal(tc.field, errors.GetField(err))
		})
	}
}

func (s *ValidatorTestSuite) TestValidateBytes() {
	s.NoError(s.validator.ValidateBytes([]byte(`{"grid":{"type":"hex","size":50},"width":10,"height":10}`)))

	err := s.validator.ValidateBytes([]byte(`{"grid":`))
	s.True(errors.IsInvalidArgument(err))

	err = s.validator.ValidateBytes([]byte(`{"grid":{"type":"hex","size":50}}`))
	s.Require().Error(err)
	s.Contains(err.Error(), "width")
}

func (s *ValidatorTestSuite) TestNilScene() {
	err := s.validator.ValidateScene(nil)
	s.True(errors.IsInvalidArgument(err))
}
