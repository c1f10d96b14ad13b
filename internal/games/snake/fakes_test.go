package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// recordingSurface keeps every live rectangle and counts calls.
type recordingSurface struct {
	next    RectID
	rects   map[RectID]core.Rect
	colors  map[RectID]core.Color
	created int
	deleted int
	moved   int
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{
		rects:  make(map[RectID]core.Rect),
		colors: make(map[RectID]core.Color),
	}
}

func (s *recordingSurface) CreateRect(r core.Rect, c core.Color) RectID {
	s.next++
	s.rects[s.next] = r
	s.colors[s.next] = c
	s.created++
	return s.next
}

func (s *recordingSurface) MoveRect(id RectID, r core.Rect) {
	if _, ok := s.rects[id]; !ok {
		panic("move of unknown rect")
	}
	s.rects[id] = r
	s.moved++
}

func (s *recordingSurface) RecolorRect(id RectID, c core.Color) {
	if _, ok := s.rects[id]; !ok {
		panic("recolor of unknown rect")
	}
	s.colors[id] = c
}

func (s *recordingSurface) DeleteRect(id RectID) {
	if _, ok := s.rects[id]; !ok {
		panic("delete of unknown rect")
	}
	delete(s.rects, id)
	delete(s.colors, id)
	s.deleted++
}

type shownDialog struct {
	title, message string
}

type recordingDialogs struct {
	shown []shownDialog
}

func (d *recordingDialogs) ShowInfo(title, message string) {
	d.shown = append(d.shown, shownDialog{title: title, message: message})
}

// testConfig returns a valid config for a res×res grid at one pixel per cell.
func testConfig(res, startLength int) config.Config {
	cfg := config.Default()
	cfg.Grid.Resolution = res
	cfg.Window.Width = res
	cfg.Window.Height = res
	cfg.Snake.StartLength = startLength
	return cfg
}
