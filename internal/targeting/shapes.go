package targeting

import (
	"math"

	"github.com/KirkDiggler/rpg-targeting/internal/entities"
	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	"github.com/KirkDiggler/rpg-targeting/internal/footprint"
	"github.com/KirkDiggler/rpg-targeting/internal/geometry"
	"github.com/KirkDiggler/rpg-targeting/internal/grid"
)

// UnsupportedShapeKind is returned when a template shape cannot be built.
func UnsupportedShapeKind(kind entities.ShapeKind) *errors.Error {
	return errors.InvalidFieldf("shape.kind",
		"unsupported shape kind %q, must be one of: circle, rectangle, polygon, cone, ray", kind).
		WithMeta("kind", string(kind))
}

// WorldShape builds the template's shape in world pixels. Distances in scene
// units are converted through the template's scene; polygon vertices are
// copied and translated.
func WorldShape(template *entities.Template) (geometry.Shape, error) {
	if template == nil {
		return nil, errors.InvalidField("template", "is required")
	}
	scene := template.Scene
	if scene == nil {
		return nil, errors.InvalidField("template.scene", "is required")
	}

	shape := template.Shape
	vb := errors.NewValidationBuilder()
	var local geometry.Shape

	switch shape.Kind {
	case entities.ShapeCircle:
		errors.ValidateNonNegative("shape.distance", shape.Distance, vb)
		local = geometry.Circle{Radius: scene.UnitsToPixels(shape.Distance)}
	case entities.ShapeRectangle:
		errors.ValidateNonNegative("shape.width", shape.Width, vb)
		errors.ValidateNonNegative("shape.height", shape.Height, vb)
		local = geometry.Rectangle{
			W: scene.UnitsToPixels(shape.Width),
			H: scene.UnitsToPixels(shape.Height),
		}
	case entities.ShapePolygon:
		if len(shape.Points) < 3 {
			vb.Fieldf("shape.points", "must have at least 3 points, got %d", len(shape.Points))
		}
		verts := make([]geometry.Point, len(shape.Points))
		for i, p := range shape.Points {
			verts[i] = geometry.Pt(p.X, p.Y)
		}
		local = geometry.NewPolygon(verts...)
	case entities.ShapeCone:
		errors.ValidateNonNegative("shape.distance", shape.Distance, vb)
		errors.ValidatePositive("shape.angle", shape.Angle, vb)
		local = geometry.Cone(scene.UnitsToPixels(shape.Distance), shape.Angle, shape.Direction)
	case entities.ShapeRay:
		errors.ValidateNonNegative("shape.distance", shape.Distance, vb)
		errors.ValidatePositive("shape.width", shape.Width, vb)
		local = geometry.Ray(scene.UnitsToPixels(shape.Distance), scene.UnitsToPixels(shape.Width), shape.Direction)
	default:
		return nil, UnsupportedShapeKind(shape.Kind)
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return geometry.Translate(local, template.X, template.Y), nil
}

// TokenShape builds the shape approximating a token: a circle around the
// token center with radius max(width, height) * cellSize / 2, or the
// width x height rectangle at the token's corner.
func TokenShape(token *entities.Token, kind TokenShapeKind) (geometry.Shape, error) {
	if token == nil {
		return nil, errors.InvalidField("token", "is required")
	}
	if token.Scene == nil {
		return nil, errors.InvalidField("token.scene", "is required")
	}
	size := token.Scene.Grid.Size

	switch kind {
	case TokenShapeCircle:
		return geometry.Circle{
			Center: TokenCenter(token),
			Radius: math.Max(token.Width, token.Height) * size / 2,
		}, nil
	case TokenShapeRectangle:
		return geometry.Rectangle{
			X: token.X,
			Y: token.Y,
			W: token.Width * size,
			H: token.Height * size,
		}, nil
	default:
		return nil, errors.InvalidFieldf(FieldTokenCollisionShape, "must be one of: CIRCLE, RECTANGLE, got %q", kind)
	}
}

// TokenCenter returns the center of the token footprint in pixels.
func TokenCenter(token *entities.Token) geometry.Point {
	return footprint.CenterPoint(geometry.Pt(token.X, token.Y), token.Width, token.Height, token.Scene.Grid.Size)
}

// tokenBounds covers every cell the token touches and its collision shape.
// Grid sampling also counts the cell under the shape center, so its bounds
// are added for that method and the pre-check never rejects a pair a method
// could accept.
func tokenBounds(token *entities.Token, shape geometry.Shape, method Method) (geometry.Bounds, error) {
	size := token.Scene.Grid.Size
	cells := geometry.BoundsOf(geometry.Rectangle{
		X: token.X,
		Y: token.Y,
		W: math.Ceil(token.Width) * size,
		H: math.Ceil(token.Height) * size,
	})
	bounds := cells.Union(geometry.BoundsOf(shape))
	if method != MethodGridSpacesPoints {
		return bounds, nil
	}

	layout, err := token.Scene.Layout()
	if err != nil {
		return geometry.Bounds{}, errors.Wrap(err, "failed to build scene grid")
	}
	if layout.Type() == grid.TypeGridless {
		return bounds, nil
	}
	centerCell := layout.CellPolygon(layout.CellAt(geometry.Center(shape)))
	return bounds.Union(geometry.BoundsOf(centerCell)), nil
}
