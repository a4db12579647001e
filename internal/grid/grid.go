// Package grid models the cell layout of a scene. Square and hex grids map
// world pixels to cells and back; a gridless scene has no cells at all.
package grid

import (
	"math"

	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	"github.com/KirkDiggler/rpg-targeting/internal/geometry"
)

// Type identifies the grid layout of a scene.
type Type string

const (
	TypeGridless Type = "gridless"
	TypeSquare   Type = "square"
	TypeHex      Type = "hex"
)

// Types lists every supported layout.
var Types = []string{string(TypeGridless), string(TypeSquare), string(TypeHex)}

// Cell addresses one grid cell by row and column.
type Cell struct {
	Row int
	Col int
}

// Grid is the cell geometry of a scene.
type Grid interface {
	Type() Type
	// Size is the cell size in pixels.
	Size() float64
	// Dimensions returns the number of rows and columns covering the scene.
	Dimensions() (rows, cols int)
	CellAt(p geometry.Point) Cell
	CellCenter(c Cell) geometry.Point
	CellPolygon(c Cell) geometry.Polygon
}

// New builds the grid for a scene of width x height pixels.
func New(t Type, size, width, height float64) (Grid, error) {
	if t == "" || t == TypeGridless {
		return gridless{size: size}, nil
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("grid.type", string(t), Types, vb)
	errors.ValidatePositive("grid.size", size, vb)
	errors.ValidateNonNegative("width", width, vb)
	errors.ValidateNonNegative("height", height, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if t == TypeHex {
		return newHex(size, width, height), nil
	}
	return square{size: size, width: width, height: height}, nil
}

type gridless struct {
	size float64
}

func (g gridless) Type() Type                        { return TypeGridless }
func (g gridless) Size() float64                     { return g.size }
func (g gridless) Dimensions() (int, int)            { return 0, 0 }
func (g gridless) CellAt(geometry.Point) Cell        { return Cell{} }
func (g gridless) CellCenter(Cell) geometry.Point    { return geometry.Point{} }
func (g gridless) CellPolygon(Cell) geometry.Polygon { return geometry.Polygon{} }

type square struct {
	size          float64
	width, height float64
}

func (g square) Type() Type    { return TypeSquare }
func (g square) Size() float64 { return g.size }

func (g square) Dimensions() (int, int) {
	return int(math.Ceil(g.height / g.size)), int(math.Ceil(g.width / g.size))
}

func (g square) CellAt(p geometry.Point) Cell {
	return Cell{
		Row: int(math.Floor(p.Y / g.size)),
		Col: int(math.Floor(p.X / g.size)),
	}
}

func (g square) CellCenter(c Cell) geometry.Point {
	return geometry.Pt((float64(c.Col)+0.5)*g.size, (float64(c.Row)+0.5)*g.size)
}

func (g square) CellPolygon(c Cell) geometry.Polygon {
	return geometry.ToPolygon(geometry.Rectangle{
		X: float64(c.Col) * g.size,
		Y: float64(c.Row) * g.size,
		W: g.size,
		H: g.size,
	})
}
