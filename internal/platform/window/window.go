// Package window provides the Ebitengine frontend: a fixed-size graphical
// window whose playfield is the configured width×height scaled up.
package window

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/rects"
	"github.com/vovakirdan/tui-snake/internal/platform/session"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// statusBarHeight is the strip above the playfield holding the score.
const statusBarHeight = 20

var (
	statusFill = color.RGBA{30, 30, 30, 255}
	statusText = color.RGBA{220, 220, 220, 255}
	black      = color.RGBA{0, 0, 0, 255}
	white      = color.RGBA{255, 255, 255, 255}
)

// Window implements ebiten.Game for one session.
type Window struct {
	ctx     context.Context
	ctl     *session.Controller
	surface *rects.Store
	keys    map[ebiten.Key]core.Action
	cfg     config.Config
	palette config.Palette
	logger  *log.Logger
	pressed []ebiten.Key
}

// New creates the game for sess and the window state around it.
func New(ctx context.Context, sess registry.Session) (*Window, error) {
	palette, err := sess.Config.Palette()
	if err != nil {
		return nil, err
	}

	logger := sess.Logger
	if logger == nil {
		logger = log.Default()
	}

	surface := rects.NewStore()
	ctl, err := session.New(sess, surface)
	if err != nil {
		return nil, err
	}

	return &Window{
		ctx:     ctx,
		ctl:     ctl,
		surface: surface,
		keys:    bindings(sess.Config),
		cfg:     sess.Config,
		palette: palette,
		logger:  logger,
	}, nil
}

// Update polls input and advances the game by one frame of time.
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		w.logger.Info("interrupted")
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		w.logger.Info("window closed", "score", w.ctl.Game().Score())
		return ebiten.Termination
	}

	w.pressed = inpututil.AppendJustPressedKeys(w.pressed[:0])
	for _, k := range w.pressed {
		if w.ctl.Handle(w.keys[k]) {
			return ebiten.Termination
		}
	}

	w.ctl.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// Draw paints the status bar, the playfield rectangles and any open dialog.
func (w *Window) Draw(screen *ebiten.Image) {
	fw, fh := w.fieldSize()

	vector.DrawFilledRect(screen, 0, 0, float32(fw), statusBarHeight, statusFill, false)
	status := fmt.Sprintf("%s  Score: %d", w.cfg.Window.Title, w.ctl.Game().Score())
	if w.ctl.Paused() {
		status += "  PAUSED"
	}
	text.Draw(screen, status, basicfont.Face7x13, 6, 14, statusText)

	field := core.NewRect(0, statusBarHeight, fw, fh)
	vector.DrawFilledRect(screen, float32(field.X), float32(field.Y), float32(field.W), float32(field.H),
		toRGBA(w.palette.Background, black), false)

	w.surface.Each(func(r core.Rect, c core.Color) {
		r = r.Scale(w.cfg.Window.Scale).Translate(field.X, field.Y)
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
			toRGBA(c, white), false)
	})

	if w.ctl.Dialog().Open() {
		drawDialog(screen, w.ctl.Dialog(), field, toRGBA(w.palette.Frame, white))
	}
}

// Layout returns the fixed logical screen size.
func (w *Window) Layout(_, _ int) (int, int) {
	fw, fh := w.fieldSize()
	return fw, fh + statusBarHeight
}

func (w *Window) fieldSize() (int, int) {
	return w.cfg.Window.Width * w.cfg.Window.Scale, w.cfg.Window.Height * w.cfg.Window.Scale
}

// Run opens the window and blocks until it is closed, the player quits or
// ctx is cancelled.
func Run(ctx context.Context, sess registry.Session) error {
	w, err := New(ctx, sess)
	if err != nil {
		return err
	}

	width, height := w.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(sess.Config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)

	w.logger.Debug("window opened", "width", width, "height", height)
	return ebiten.RunGame(w)
}
