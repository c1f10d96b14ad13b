package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Grid maps the square cell playfield onto a width×height pixel area.
// Cell edges are computed with integer division so neighbouring cells tile
// the area exactly even when the pixel size is not a multiple of the resolution.
type Grid struct {
	resolution int
	width      int
	height     int
}

// NewGrid creates a grid of resolution×resolution cells over width×height pixels.
func NewGrid(resolution, width, height int) Grid {
	return Grid{
		resolution: max(resolution, 1),
		width:      width,
		height:     height,
	}
}

// Resolution returns the number of cells per side.
func (g Grid) Resolution() int {
	return g.resolution
}

// Cells returns the total number of cells.
func (g Grid) Cells() int {
	return g.resolution * g.resolution
}

// Contains reports whether p lies inside [0, resolution)².
func (g Grid) Contains(p core.Point) bool {
	return p.X >= 0 && p.X < g.resolution && p.Y >= 0 && p.Y < g.resolution
}

// Center returns the cell the snake head starts on.
func (g Grid) Center() core.Point {
	return core.Point{X: g.resolution / 2, Y: g.resolution / 2}
}

// Bounds returns the pixel rectangle covered by the playfield.
func (g Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.width, g.height)
}

// CellRect converts a grid position to its pixel rectangle.
func (g Grid) CellRect(p core.Point) core.Rect {
	x0 := floorDiv(p.X*g.width, g.resolution)
	x1 := floorDiv((p.X+1)*g.width, g.resolution)
	y0 := floorDiv(p.Y*g.height, g.resolution)
	y1 := floorDiv((p.Y+1)*g.height, g.resolution)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
