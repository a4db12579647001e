package entities

// EntityTypeTemplate is the core.Entity type of a template.
const EntityTypeTemplate = "template"

// ShapeKind names the shape of a template
type ShapeKind string

const (
	ShapeCircle    ShapeKind = "circle"
	ShapeRectangle ShapeKind = "rectangle"
	ShapePolygon   ShapeKind = "polygon"
	ShapeCone      ShapeKind = "cone"
	ShapeRay       ShapeKind = "ray"
)

// ShapeKinds lists every template shape the engine can build.
var ShapeKinds = []string{
	string(ShapeCircle),
	string(ShapeRectangle),
	string(ShapePolygon),
	string(ShapeCone),
	string(ShapeRay),
}

// Template is an area effect drawn on the scene
type Template struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	SceneID string `json:"scene_id,omitempty" yaml:"scene_id,omitempty"`
	Scene   *Scene `json:"-" yaml:"-"`

	X     float64       `json:"x" yaml:"x"` // Origin in pixels
	Y     float64       `json:"y" yaml:"y"` // Origin in pixels
	Shape TemplateShape `json:"shape" yaml:"shape"`
}

// TemplateShape holds the parameters of a template relative to its origin.
// Which fields apply depends on Kind:
//
//	circle:    Distance is the radius in scene units
//	rectangle: Width and Height in scene units
//	polygon:   Points in pixels
//	cone:      Distance, Angle and Direction in degrees
//	ray:       Distance, Width and Direction in degrees
type TemplateShape struct {
	Kind      ShapeKind `json:"kind" yaml:"kind"`
	Distance  float64   `json:"distance,omitempty" yaml:"distance,omitempty"`
	Width     float64   `json:"width,omitempty" yaml:"width,omitempty"`
	Height    float64   `json:"height,omitempty" yaml:"height,omitempty"`
	Angle     float64   `json:"angle,omitempty" yaml:"angle,omitempty"`
	Direction float64   `json:"direction,omitempty" yaml:"direction,omitempty"`
	Points    []Point   `json:"points,omitempty" yaml:"points,omitempty"`
}

// Point is a polygon vertex in pixels
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// GetID returns the template id
func (t *Template) GetID() string { return t.ID }

// GetType returns the entity type
func (t *Template) GetType() string { return EntityTypeTemplate }
