package tui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/session"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Layout: HUD row, framed playfield, then the help line outside the screen buffer.
const (
	hudRows   = 1
	frameSize = 2
	helpRows  = 1
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a snake session.
type Model struct {
	ctl      *session.Controller
	surface  *ScreenSurface
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	cfg      config.Config
	palette  config.Palette
	width    int
	height   int
	quitting bool
}

// NewModel creates the game for sess and wraps it in a model sized to fit the
// configured playfield exactly.
func NewModel(sess registry.Session) (Model, error) {
	palette, err := sess.Config.Palette()
	if err != nil {
		return Model{}, err
	}

	surface := NewScreenSurface()
	ctl, err := session.New(sess, surface)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		ctl:     ctl,
		surface: surface,
		keys:    NewKeyMap(sess.Config),
		help:    h,
		screen:  core.NewScreen(0, 0),
		cfg:     sess.Config,
		palette: palette,
	}
	m.resize(m.requiredSize())
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.ctl.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.ctl.Handle(m.keys.Action(msg)) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		// The game waits while the playfield does not fit
		if m.fits() {
			m.ctl.Step()
		}
		return m, tickCmd(m.ctl.Interval())
	}

	return m, nil
}

// requiredSize returns the terminal size that fits the whole layout.
func (m Model) requiredSize() (int, int) {
	return m.cfg.Window.Width + frameSize, m.cfg.Window.Height + frameSize + hudRows + helpRows
}

func (m Model) fits() bool {
	w, h := m.requiredSize()
	return m.width >= w && m.height >= h
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.screen.Resize(width, max(height-helpRows, 0))
	m.help.Width = width
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if m.fits() {
		m.renderGame()
	} else {
		m.renderTooSmall()
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m Model) renderGame() {
	fw, fh := m.cfg.Window.Width, m.cfg.Window.Height
	ox := (m.screen.Width() - (fw + frameSize)) / 2

	hud := fmt.Sprintf(" %s  Score: %d", m.cfg.Window.Title, m.ctl.Game().Score())
	if m.ctl.Paused() {
		hud += "  PAUSED"
	}
	m.screen.DrawText(ox, 0, hud)

	frame := core.NewRect(ox, hudRows, fw+frameSize, fh+frameSize)
	field := core.NewRect(ox+1, hudRows+1, fw, fh)

	fill := blockRune
	if m.palette.Background == core.ColorDefault {
		fill = ' '
	}
	m.screen.FillRect(field, fill, m.palette.Background)
	m.screen.DrawBox(frame, m.palette.Frame)
	m.surface.Draw(m.screen, field.X, field.Y, field)

	if m.ctl.Dialog().Open() {
		drawDialog(m.screen, m.ctl.Dialog(), frame, m.palette.Frame)
	}
}

func (m Model) renderTooSmall() {
	w, h := m.requiredSize()
	mid := m.screen.Height() / 2
	m.screen.DrawTextCentered(mid-1, "Terminal too small")
	m.screen.DrawTextCentered(mid, fmt.Sprintf("need %dx%d, have %dx%d", w, h, m.width, m.height))
}

// Run starts the Bubble Tea program and blocks until the player quits or ctx is done.
func Run(ctx context.Context, sess registry.Session) error {
	model, err := NewModel(sess)
	if err != nil {
		return err
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		model.resize(w, h)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err = p.Run()
	if err != nil && ctx.Err() != nil {
		// Interrupted by a signal
		return nil
	}
	return err
}
