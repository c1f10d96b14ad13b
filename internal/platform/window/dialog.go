package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/modal"
)

const (
	dialogPadding    = 12
	dialogLineHeight = 16
	dialogHint       = "Press Enter"
)

var (
	dialogFill  = color.RGBA{20, 20, 20, 235}
	dialogTitle = color.RGBA{255, 255, 0, 255}
	dialogText  = color.RGBA{230, 230, 230, 255}
	dialogHintC = color.RGBA{140, 140, 140, 255}
)

// drawDialog draws the modal as a framed box centered on area.
func drawDialog(dst *ebiten.Image, m *modal.Modal, area core.Rect, frame color.Color) {
	face := basicfont.Face7x13

	lines := m.Lines()
	if len(lines) > 0 && lines[0] == m.Title() {
		lines = lines[1:]
	}

	textW := max(text.BoundString(face, m.Title()).Dx(), text.BoundString(face, dialogHint).Dx())
	for _, l := range lines {
		textW = max(textW, text.BoundString(face, l).Dx())
	}

	rows := len(lines) + 4 // title, gap, lines, gap, hint
	boxW := textW + 2*dialogPadding
	boxH := rows*dialogLineHeight + 2*dialogPadding - 4
	x := area.X + (area.W-boxW)/2
	y := area.Y + (area.H-boxH)/2

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(boxW), float32(boxH), dialogFill, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(boxW), float32(boxH), 2, frame, false)

	line := func(row int, s string, c color.Color) {
		w := text.BoundString(face, s).Dx()
		baseline := y + dialogPadding + row*dialogLineHeight + 9
		text.Draw(dst, s, face, x+(boxW-w)/2, baseline, c)
	}

	line(0, m.Title(), dialogTitle)
	for i, l := range lines {
		line(i+2, l, dialogText)
	}
	line(rows-1, dialogHint, dialogHintC)
}
