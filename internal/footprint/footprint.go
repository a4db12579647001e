// Package footprint samples the grid cells a token occupies.
package footprint

import (
	"github.com/KirkDiggler/rpg-targeting/internal/geometry"
	"github.com/KirkDiggler/rpg-targeting/internal/grid"
)

// windowScale widens the scan window past the shape's bounding radius so
// cells whose centers sit just inside the shape edge are never skipped.
const windowScale = 1.5

// CenterPoint returns the center of a token footprint. origin is the token's
// top-left corner in pixels, width and height are in grid units.
func CenterPoint(origin geometry.Point, width, height, cellSize float64) geometry.Point {
	return geometry.Pt(origin.X+width*cellSize/2, origin.Y+height*cellSize/2)
}

// GridSpacePoints returns the center of every grid cell whose center lies in
// shape. Gridless scenes have no cells and yield an empty result.
//
// The scan covers rows and columns within windowScale times the shape's
// bounding radius of its center, clamped to the scene. The cell under the
// shape center is always included. Points come back in row-major order.
func GridSpacePoints(g grid.Grid, shape geometry.Shape) []geometry.Point {
	if g == nil || g.Type() == grid.TypeGridless {
		return nil
	}
	rows, cols := g.Dimensions()
	if rows <= 0 || cols <= 0 {
		return nil
	}

	center := geometry.Center(shape)
	reach := geometry.BoundingRadius(shape) * windowScale
	lo := g.CellAt(geometry.Pt(center.X-reach, center.Y-reach))
	hi := g.CellAt(geometry.Pt(center.X+reach, center.Y+reach))
	centerCell := g.CellAt(center)

	minRow, maxRow := clamp(lo.Row, 0, rows-1), clamp(hi.Row, 0, rows-1)
	minCol, maxCol := clamp(lo.Col, 0, cols-1), clamp(hi.Col, 0, cols-1)

	var points []geometry.Point
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cell := grid.Cell{Row: row, Col: col}
			p := g.CellCenter(cell)
			if cell == centerCell || geometry.Contains(shape, p) {
				points = append(points, p)
			}
		}
	}
	return points
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
