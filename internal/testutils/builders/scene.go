// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-targeting/internal/entities"
	"github.com/KirkDiggler/rpg-targeting/internal/grid"
)

// SceneBuilder provides a fluent interface for building test scenes
type SceneBuilder struct {
	scene *entities.Scene
}

// NewSceneBuilder creates a 20x20 square grid scene of 100px, 5ft cells
func NewSceneBuilder() *SceneBuilder {
	return &SceneBuilder{
		scene: &entities.Scene{
			ID:   "scene-test-001",
			Name: "Test Scene",
			Grid: entities.GridConfig{
				Type:     grid.TypeSquare,
				Size:     100,
				Distance: 5,
				Units:    "ft",
			},
			Width:  2000,
			Height: 2000,
		},
	}
}

// WithID sets the scene ID
func (b *SceneBuilder) WithID(id string) *SceneBuilder {
	b.scene.ID = id
	return b
}

// WithGrid sets the grid type and cell size
func (b *SceneBuilder) WithGrid(t grid.Type, size float64) *SceneBuilder {
	b.scene.Grid.Type = t
	b.scene.Grid.Size = size
	return b
}

// WithDimensions sets the world size in pixels
func (b *SceneBuilder) WithDimensions(width, height float64) *SceneBuilder {
	b.scene.Width = width
	b.scene.Height = height
	return b
}

// WithToken places a token with its top-left corner at (x, y)
func (b *SceneBuilder) WithToken(id string, x, y, width, height float64) *SceneBuilder {
	b.scene.Tokens = append(b.scene.Tokens, &entities.Token{
		ID:     id,
		Name:   id,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	})
	return b
}

// WithCircle draws a circle template of radius distance scene units
func (b *SceneBuilder) WithCircle(id string, x, y, distance float64) *SceneBuilder {
	return b.WithTemplate(id, x, y, entities.TemplateShape{
		Kind:     entities.ShapeCircle,
		Distance: distance,
	})
}

// WithRectangle draws a rectangle template measured in scene units
func (b *SceneBuilder) WithRectangle(id string, x, y, width, height float64) *SceneBuilder {
	return b.WithTemplate(id, x, y, entities.TemplateShape{
		Kind:   entities.ShapeRectangle,
		Width:  width,
		Height: height,
	})
}

// WithTemplate draws a template with an arbitrary shape
func (b *SceneBuilder) WithTemplate(id string, x, y float64, shape entities.TemplateShape) *SceneBuilder {
	b.scene.Templates = append(b.scene.Templates, &entities.Template{
		ID:    id,
		X:     x,
		Y:     y,
		Shape: shape,
	})
	return b
}

// Build links tokens and templates to the scene and returns it
func (b *SceneBuilder) Build() *entities.Scene {
	return b.scene.Link()
}
