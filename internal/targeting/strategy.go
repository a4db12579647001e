package targeting

import (
	"math"

	"github.com/KirkDiggler/rpg-targeting/internal/entities"
	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	"github.com/KirkDiggler/rpg-targeting/internal/footprint"
	"github.com/KirkDiggler/rpg-targeting/internal/geometry"
)

// coverage computes the raw ratio for a token against an already built
// template shape. Each method returns its own ratio.
func coverage(token *entities.Token, templateShape, tokenShape geometry.Shape, d Defaults) (float64, error) {
	switch d.CollisionMethod {
	case MethodPointsCenter:
		return pointsRatio(templateShape, []geometry.Point{TokenCenter(token)}), nil

	case MethodGridSpacesPoints:
		if geometry.Area(tokenShape) <= 0 {
			return 0, nil
		}
		layout, err := token.Scene.Layout()
		if err != nil {
			return 0, errors.Wrap(err, "failed to build scene grid")
		}
		return pointsRatio(templateShape, footprint.GridSpacePoints(layout, tokenShape)), nil

	case MethodAreaIntersection:
		return areaRatio(templateShape, tokenShape, d.ConsiderTemplateRatio), nil

	default:
		return 0, errors.InvalidFieldf(FieldCollisionMethod, "must be one of: %s, %s, %s, got %q",
			MethodPointsCenter, MethodGridSpacesPoints, MethodAreaIntersection, d.CollisionMethod)
	}
}

// pointsRatio is the fraction of points inside shape. No points means 0.
func pointsRatio(shape geometry.Shape, points []geometry.Point) float64 {
	if len(points) == 0 {
		return 0
	}
	inside := 0
	for _, p := range points {
		if geometry.Contains(shape, p) {
			inside++
		}
	}
	return float64(inside) / float64(len(points))
}

func areaRatio(templateShape, tokenShape geometry.Shape, considerTemplate bool) float64 {
	shared := geometry.IntersectionArea(templateShape, tokenShape)
	ratio := safeRatio(shared, geometry.Area(tokenShape))
	if considerTemplate {
		ratio = math.Max(ratio, safeRatio(shared, geometry.Area(templateShape)))
	}
	return clampUnit(ratio)
}

// safeRatio defines division by a degenerate (zero) area as 0.
func safeRatio(num, denom float64) float64 {
	if denom <= 0 || math.IsNaN(denom) || math.IsNaN(num) {
		return 0
	}
	return num / denom
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
