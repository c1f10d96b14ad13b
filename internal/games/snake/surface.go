package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// RectID identifies a rectangle owned by a Surface.
type RectID int

// Surface is the drawing collaborator. The game creates one rectangle per
// visible cell and tells the surface about every move, recolor and removal;
// the surface never has to diff game state.
type Surface interface {
	CreateRect(r core.Rect, c core.Color) RectID
	MoveRect(id RectID, r core.Rect)
	RecolorRect(id RectID, c core.Color)
	DeleteRect(id RectID)
}

// Dialogs shows informational messages for game events.
// Frontends treat a shown dialog as modal: the tick loop stops until the
// player dismisses it, after which the frontend calls Game.Acknowledge.
type Dialogs interface {
	ShowInfo(title, message string)
}

type nopSurface struct {
	next RectID
}

func (s *nopSurface) CreateRect(core.Rect, core.Color) RectID {
	s.next++
	return s.next
}

func (*nopSurface) MoveRect(RectID, core.Rect) {}
func (*nopSurface) RecolorRect(RectID, core.Color) {}
func (*nopSurface) DeleteRect(RectID) {}

type nopDialogs struct{}

func (nopDialogs) ShowInfo(string, string) {}

// cell is one grid square with its rectangle on the surface.
type cell struct {
	pos  core.Point
	rect RectID
}

// canvas binds a grid to a surface so cells can be created and moved by
// grid position.
type canvas struct {
	grid    Grid
	surface Surface
}

func (cv canvas) create(p core.Point, c core.Color) cell {
	return cell{pos: p, rect: cv.surface.CreateRect(cv.grid.CellRect(p), c)}
}

func (cv canvas) move(c *cell, p core.Point) {
	if c.pos == p {
		return
	}
	c.pos = p
	cv.surface.MoveRect(c.rect, cv.grid.CellRect(p))
}

func (cv canvas) remove(c cell) {
	cv.surface.DeleteRect(c.rect)
}
