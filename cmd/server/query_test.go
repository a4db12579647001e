package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	engine "github.com/KirkDiggler/rpg-targeting/internal/targeting"
)

const testScene = `
id: scene-1
grid:
  type: square
  size: 100
  distance: 5
width: 1000
height: 1000
tokens:
  - id: tok-1
    x: 0
    y: 0
    width: 1
    height: 1
  - id: tok-2
    x: 500
    y: 500
    width: 1
    height: 1
templates:
  - id: tpl-1
    x: 50
    y: 50
    shape:
      kind: circle
      distance: 5
`

type QueryTestSuite struct {
	suite.Suite
	scenePath string
}

func TestQueryTestSuite(t *testing.T) {
	suite.Run(t, new(QueryTestSuite))
}

func (s *QueryTestSuite) SetupTest() {
	s.scenePath = s.writeScene(testScene)
}

func (s *QueryTestSuite) writeScene(body string) string {
	path := filepath.Join(s.T().TempDir(), "scene.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *QueryTestSuite) run(input *queryInput) map[string]any {
	var buf bytes.Buffer
	s.Require().NoError(runQuery(&buf, input))

	var out map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &out))
	return out
}

func (s *QueryTestSuite) TestCollides() {
	out := s.run(&queryInput{ScenePath: s.scenePath, TemplateID: "tpl-1", TokenID: "tok-1"})
	s.Equal(true, out["result"])

	s.Run("percentage output", func() {
		out := s.run(&queryInput{
			ScenePath:  s.scenePath,
			TemplateID: "tpl-1",
			TokenID:    "tok-2",
			Options:    &engine.Options{PercentageOutput: engine.Ptr(true)},
		})
		s.InDelta(0.0, out["result"], 1e-9)
	})
}

func (s *QueryTestSuite) TestTokensIn() {
	out := s.run(&queryInput{ScenePath: s.scenePath, TemplateID: "tpl-1"})
	s.Equal([]any{"tok-1"}, out["tokens"])
}

func (s *QueryTestSuite) TestTemplatesContaining() {
	out := s.run(&queryInput{ScenePath: s.scenePath, TokenID: "tok-1"})
	s.Equal([]any{"tpl-1"}, out["templates"])

	out = s.run(&queryInput{ScenePath: s.scenePath, TokenID: "tok-2"})
	s.Equal([]any{}, out["templates"])
}

func (s *QueryTestSuite) TestErrors() {
	var buf bytes.Buffer

	s.Run("no ids", func() {
		err := runQuery(&buf, &queryInput{ScenePath: s.scenePath})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown template", func() {
		err := runQuery(&buf, &queryInput{ScenePath: s.scenePath, TemplateID: "missing"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("invalid option", func() {
		err := runQuery(&buf, &queryInput{
			ScenePath:  s.scenePath,
			TemplateID: "tpl-1",
			TokenID:    "tok-1",
			Options:    &engine.Options{Tolerance: engine.Ptr(0.0)},
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("scene fails schema", func() {
		path := s.writeScene("grid:\n  type: square\n  size: 0\nwidth: 100\nheight: 100\n")
		err := runQuery(&buf, &queryInput{ScenePath: path, TemplateID: "tpl-1"})
		s.True(errors.IsInvalidArgument(err))
	})
}
