package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrGridFull is returned when the snake covers every cell and no food can be placed.
var ErrGridFull = errors.New("snake: no free cell for food")

// Score counts food eaten in the current round.
type Score int

// Inc adds one point.
func (sc *Score) Inc() {
	*sc++
}

// Reset zeroes the score.
func (sc *Score) Reset() {
	*sc = 0
}

// Food is the single food cell on the grid.
type Food struct {
	cv     canvas
	color  core.Color
	rng    *rand.Rand
	cell   cell
	placed bool
}

// NewFood creates food and places it on a free cell.
// The returned Food is usable even when placement fails with ErrGridFull.
func NewFood(grid Grid, surface Surface, rng *rand.Rand, color core.Color, s *Snake) (*Food, error) {
	if surface == nil {
		surface = &nopSurface{}
	}
	f := &Food{
		cv:    canvas{grid: grid, surface: surface},
		color: color,
		rng:   rng,
	}
	return f, f.Place(s)
}

// Place moves the food to a cell chosen uniformly among those not occupied
// by the snake. When no cell is free the food is removed from the surface
// and ErrGridFull is returned.
func (f *Food) Place(s *Snake) error {
	res := f.cv.grid.Resolution()
	free := make([]core.Point, 0, f.cv.grid.Cells())
	for y := 0; y < res; y++ {
		for x := 0; x < res; x++ {
			p := core.Point{X: x, Y: y}
			if !s.Occupies(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		if f.placed {
			f.cv.remove(f.cell)
			f.placed = false
		}
		return ErrGridFull
	}

	p := free[f.rng.Intn(len(free))]
	if f.placed {
		f.cv.move(&f.cell, p)
	} else {
		f.cell = f.cv.create(p, f.color)
		f.placed = true
	}
	return nil
}

// Eat scores a point, moves the food elsewhere and grows the snake, in that order.
// A placement failure is returned after the snake has grown.
func (f *Food) Eat(s *Snake, score *Score) error {
	score.Inc()
	err := f.Place(s)
	s.Grow()
	return err
}

// At reports whether the food is on p.
func (f *Food) At(p core.Point) bool {
	return f.placed && f.cell.pos == p
}

// Position returns the food cell and whether the food is on the grid.
func (f *Food) Position() (core.Point, bool) {
	return f.cell.pos, f.placed
}
