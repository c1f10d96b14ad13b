package tui

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/rects"
)

// blockRune fills every rectangle drawn on the terminal.
const blockRune = '█'

// ScreenSurface rasterizes the game's rectangles onto a core.Screen.
// Rectangles are in terminal cells.
type ScreenSurface struct {
	*rects.Store
}

// NewScreenSurface creates an empty surface.
func NewScreenSurface() *ScreenSurface {
	return &ScreenSurface{Store: rects.NewStore()}
}

// Draw rasterizes every rectangle translated by (dx, dy), clipped to clip.
func (s *ScreenSurface) Draw(dst *core.Screen, dx, dy int, clip core.Rect) {
	s.Each(func(r core.Rect, c core.Color) {
		r = r.Translate(dx, dy)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if clip.Contains(x, y) {
					dst.SetCell(x, y, core.Cell{Rune: blockRune, Color: c})
				}
			}
		}
	})
}
