// Package entities provides the scene, token and template documents that
// targeting queries read.
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-targeting/internal/grid"
)

var (
	_ core.Entity = (*Scene)(nil)
	_ core.Entity = (*Token)(nil)
	_ core.Entity = (*Template)(nil)
)

// EntityTypeScene is the core.Entity type of a scene.
const EntityTypeScene = "scene"

// Scene is a map with a grid, the tokens placed on it and the templates
// drawn over it
type Scene struct {
	ID        string      `json:"id" yaml:"id"`
	Name      string      `json:"name,omitempty" yaml:"name,omitempty"`
	Grid      GridConfig  `json:"grid" yaml:"grid"`
	Width     float64     `json:"width" yaml:"width"`   // World width in pixels
	Height    float64     `json:"height" yaml:"height"` // World height in pixels
	Tokens    []*Token    `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Templates []*Template `json:"templates,omitempty" yaml:"templates,omitempty"`
	CreatedAt int64       `json:"created_at,omitempty" yaml:"-"`
	UpdatedAt int64       `json:"updated_at,omitempty" yaml:"-"`
}

// GridConfig describes the grid of a scene
type GridConfig struct {
	Type     grid.Type `json:"type" yaml:"type"`
	Size     float64   `json:"size" yaml:"size"`         // Cell size in pixels
	Distance float64   `json:"distance" yaml:"distance"` // Scene units per cell, e.g. 5 for 5ft squares
	Units    string    `json:"units,omitempty" yaml:"units,omitempty"`
}

// GetID returns the scene id
func (s *Scene) GetID() string { return s.ID }

// GetType returns the entity type
func (s *Scene) GetType() string { return EntityTypeScene }

// Link points every token and template back at the scene. Call it after a
// scene is decoded or assembled.
func (s *Scene) Link() *Scene {
	for _, t := range s.Tokens {
		t.Scene = s
		t.SceneID = s.ID
	}
	for _, t := range s.Templates {
		t.Scene = s
		t.SceneID = s.ID
	}
	return s
}

// Clone returns a linked deep copy of the scene. Tokens, templates and
// polygon vertices are not shared with s.
func (s *Scene) Clone() *Scene {
	c := *s
	c.Tokens = nil
	c.Templates = nil
	for _, t := range s.Tokens {
		token := *t
		c.Tokens = append(c.Tokens, &token)
	}
	for _, t := range s.Templates {
		template := *t
		if t.Shape.Points != nil {
			template.Shape.Points = append([]Point(nil), t.Shape.Points...)
		}
		c.Templates = append(c.Templates, &template)
	}
	return c.Link()
}

// Layout returns the grid geometry of the scene.
func (s *Scene) Layout() (grid.Grid, error) {
	return grid.New(s.Grid.Type, s.Grid.Size, s.Width, s.Height)
}

// UnitsToPixels converts a distance in scene units into pixels. A scene
// without a distance scale treats units as grid cells.
func (s *Scene) UnitsToPixels(units float64) float64 {
	if s.Grid.Distance <= 0 {
		return units * s.Grid.Size
	}
	return units / s.Grid.Distance * s.Grid.Size
}

// Token looks up a token by id
func (s *Scene) Token(id string) (*Token, bool) {
	for _, t := range s.Tokens {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// Template looks up a template by id
func (s *Scene) Template(id string) (*Template, bool) {
	for _, t := range s.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// SameScene reports whether two scene references denote the same scene:
// the same pointer, or two scenes carrying the same non-empty id.
func SameScene(a, b *Scene) bool {
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}
	return a.ID != "" && a.ID == b.ID
}
