package grid

import (
	"math"

	"github.com/KirkDiggler/rpg-targeting/internal/geometry"
)

// hex is a pointy-top hex grid with odd rows shifted right by half a cell.
// The cell size is the width across flats.
type hex struct {
	size          float64
	width, height float64

	// h is the point-to-point height, rowStep the vertical distance between rows.
	h       float64
	rowStep float64
}

func newHex(size, width, height float64) hex {
	h := size * 2 / math.Sqrt(3)
	return hex{
		size:    size,
		width:   width,
		height:  height,
		h:       h,
		rowStep: h * 0.75,
	}
}

func (g hex) Type() Type    { return TypeHex }
func (g hex) Size() float64 { return g.size }

func (g hex) Dimensions() (int, int) {
	return int(math.Ceil(g.height / g.rowStep)), int(math.Ceil(g.width / g.size))
}

func (g hex) CellCenter(c Cell) geometry.Point {
	x := (float64(c.Col) + 0.5) * g.size
	if c.Row%2 != 0 {
		x += g.size / 2
	}
	return geometry.Pt(x, float64(c.Row)*g.rowStep+g.h/2)
}

// CellAt picks the nearest cell center. Hex cells are exactly the Voronoi
// regions of their centers, so this matches the cell polygon.
func (g hex) CellAt(p geometry.Point) Cell {
	row := int(math.Floor(p.Y / g.rowStep))
	offset := 0.0
	if row%2 != 0 {
		offset = g.size / 2
	}
	col := int(math.Floor((p.X - offset) / g.size))

	best := Cell{Row: row, Col: col}
	bestDist := math.Inf(1)
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			cell := Cell{Row: r, Col: c}
			if d := g.CellCenter(cell).Distance(p); d < bestDist {
				best, bestDist = cell, d
			}
		}
	}
	return best
}

func (g hex) CellPolygon(c Cell) geometry.Polygon {
	center := g.CellCenter(c)
	radius := g.h / 2
	pts := make([]geometry.Point, 6)
	for i := range pts {
		angle := (-90 + 60*float64(i)) * math.Pi / 180
		pts[i] = geometry.Pt(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
	}
	return geometry.NewPolygon(pts...)
}
