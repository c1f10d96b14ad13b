package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// growStep is where new segments go while the snake has not moved yet:
// the starting body trails behind the head along -x.
var growStep = core.Point{X: -1, Y: 0}

// Snake is the head plus its body segments in head-to-tail order.
// It owns the surface rectangles of all its cells.
type Snake struct {
	cv          canvas
	headColor   core.Color
	bodyColor   core.Color
	startLength int

	head cell
	body []cell

	direction Direction // used for motion this tick
	buffered  Direction // latest accepted input, committed at the next tick
}

// NewSnake creates a snake at the grid center with startLength body segments.
func NewSnake(grid Grid, surface Surface, startLength int, headColor, bodyColor core.Color) *Snake {
	if surface == nil {
		surface = &nopSurface{}
	}
	s := &Snake{
		cv:          canvas{grid: grid, surface: surface},
		headColor:   headColor,
		bodyColor:   bodyColor,
		startLength: startLength,
	}
	s.head = s.cv.create(grid.Center(), headColor)
	s.Reset()
	return s
}

// Reset puts the snake back to the center at its starting length with no direction.
// Removed segments are deleted from the surface.
func (s *Snake) Reset() {
	for i := len(s.body) - 1; i >= 0; i-- {
		s.cv.remove(s.body[i])
	}
	s.body = s.body[:0]

	s.cv.move(&s.head, s.cv.grid.Center())
	s.cv.surface.RecolorRect(s.head.rect, s.headColor)
	s.direction = DirNone
	s.buffered = DirNone

	for len(s.body) < s.startLength {
		s.Grow()
	}
}

// SetDirection buffers d for the next tick and reports whether it was accepted.
// A reversal of the current direction of travel is rejected. Before the first
// move any direction is accepted except the one leading into the body.
func (s *Snake) SetDirection(d Direction) bool {
	if d == DirNone {
		return false
	}
	if s.direction == DirNone {
		if len(s.body) > 0 && s.head.pos.Add(d.Delta()) == s.body[0].pos {
			return false
		}
	} else if d == s.direction.Opposite() {
		return false
	}
	s.buffered = d
	return true
}

// CommitDirection collapses the buffered direction into the current one.
func (s *Snake) CommitDirection() {
	s.direction = s.buffered
}

// Advance moves the snake one cell. Each segment takes the place of the one
// ahead of it, starting from the tail, then the head steps forward.
func (s *Snake) Advance() {
	if s.direction == DirNone {
		return
	}
	for i := len(s.body) - 1; i > 0; i-- {
		s.cv.move(&s.body[i], s.body[i-1].pos)
	}
	if len(s.body) > 0 {
		s.cv.move(&s.body[0], s.head.pos)
	}
	s.cv.move(&s.head, s.head.pos.Add(s.direction.Delta()))
}

// Grow appends one segment. While the snake is idle the segment extends the
// starting line; once moving, it is created on the tail cell and separates
// from it at the next Advance.
func (s *Snake) Grow() {
	anchor := s.head.pos
	if n := len(s.body); n > 0 {
		anchor = s.body[n-1].pos
	}

	pos := anchor
	if s.direction == DirNone {
		pos = anchor.Add(growStep)
	}
	s.body = append(s.body, s.cv.create(pos, s.bodyColor))
}

// Recolor repaints the head and every body segment.
func (s *Snake) Recolor(head, body core.Color) {
	s.cv.surface.RecolorRect(s.head.rect, head)
	for _, seg := range s.body {
		s.cv.surface.RecolorRect(seg.rect, body)
	}
}

// OccupiesHead reports whether the head is on p.
func (s *Snake) OccupiesHead(p core.Point) bool {
	return s.head.pos == p
}

// OccupiesBody reports whether any body segment is on p.
func (s *Snake) OccupiesBody(p core.Point) bool {
	for _, seg := range s.body {
		if seg.pos == p {
			return true
		}
	}
	return false
}

// Occupies reports whether the head or the body is on p.
func (s *Snake) Occupies(p core.Point) bool {
	return s.OccupiesHead(p) || s.OccupiesBody(p)
}

// HitsSelf reports whether the head shares a cell with the body.
func (s *Snake) HitsSelf() bool {
	return s.OccupiesBody(s.head.pos)
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.head.pos
}

// Body returns a copy of the body positions, head-to-tail.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	for i, seg := range s.body {
		out[i] = seg.pos
	}
	return out
}

// Len returns the number of body segments (the head is not counted).
func (s *Snake) Len() int {
	return len(s.body)
}

// StartLength returns the configured starting body length.
func (s *Snake) StartLength() int {
	return s.startLength
}

// Direction returns the direction used for the current tick.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Buffered returns the direction that will be committed at the next tick.
func (s *Snake) Buffered() Direction {
	return s.buffered
}
