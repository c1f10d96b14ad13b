package tui

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/modal"
)

// dialogHint is shown under the message of every dialog.
const dialogHint = "[enter] OK"

// drawDialog draws the modal as a boxed overlay centered on area.
func drawDialog(dst *core.Screen, m *modal.Modal, area core.Rect, frame core.Color) {
	lines := m.Lines()
	if len(lines) > 0 && lines[0] == m.Title() {
		lines = lines[1:]
	}

	width := max(m.Width(), len(dialogHint))
	boxW := width + 4
	boxH := len(lines) + 6 // border, title, gap, lines, gap, hint
	box := core.NewRect(
		area.X+(area.W-boxW)/2,
		area.Y+(area.H-boxH)/2,
		boxW, boxH,
	)

	// Clear area behind overlay
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, frame)

	center := func(y int, text string, c core.Color) {
		x := box.X + (box.W-len([]rune(text)))/2
		dst.DrawTextColor(x, y, text, c)
	}

	y := box.Y + 1
	center(y, m.Title(), core.ColorBrightYellow)
	y += 2
	for _, l := range lines {
		center(y, l, core.ColorDefault)
		y++
	}
	center(box.Bottom()-2, dialogHint, core.ColorGray)
}
