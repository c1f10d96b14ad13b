// Package session drives a snake.Game on behalf of a frontend: it routes
// player actions, runs the fixed-interval ticks and holds the pause and
// dialog state. It has no toolkit dependencies, so both frontends share it.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/modal"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// maxCatchUp bounds the ticks run for one Advance call after a stall.
const maxCatchUp = 5

// Controller routes actions and time to a game.
type Controller struct {
	game     *snake.Game
	dialog   *modal.Modal
	logger   *log.Logger
	interval time.Duration
	elapsed  time.Duration
	paused   bool
}

// New creates the game for sess, drawing through surface.
func New(sess registry.Session, surface snake.Surface) (*Controller, error) {
	logger := sess.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		logger:   logger,
		interval: sess.Config.TickInterval(),
	}
	c.dialog = modal.New(c.acknowledge)

	game, err := snake.NewGame(sess.Config, sess.Seed, surface, c.dialog)
	if err != nil {
		return nil, err
	}
	c.game = game

	logger.Debug("session started", "seed", sess.Seed, "resolution", game.Grid().Resolution(),
		"win_score", game.WinScore(), "interval", c.interval)
	return c, nil
}

// Handle applies one player action. It reports whether the player asked to quit.
func (c *Controller) Handle(a core.Action) bool {
	switch {
	case a == core.ActionQuit:
		c.logger.Info("quit", "score", c.game.Score(), "ticks", c.game.Ticks())
		return true

	case c.dialog.Open():
		// Only dismissal gets through while a dialog is up
		if a == core.ActionConfirm {
			c.dialog.Dismiss()
		}

	case a == core.ActionPause:
		c.paused = !c.paused
		c.elapsed = 0
		c.logger.Debug("pause toggled", "paused", c.paused)

	case a.IsSteer() && !c.paused:
		accepted := c.game.Steer(a)
		c.logger.Debug("steer", "action", a, "accepted", accepted)
	}
	return false
}

// Running reports whether the simulation may advance.
func (c *Controller) Running() bool {
	return !c.paused && !c.dialog.Open()
}

// Step runs a single game tick unless paused or a dialog is open.
func (c *Controller) Step() snake.Event {
	if !c.Running() {
		return snake.EventNone
	}
	ev := c.game.Tick()
	c.logEvent(ev)
	return ev
}

// Advance accumulates dt and runs every tick that became due, returning how
// many ran. Time spent paused or behind a dialog is not accumulated.
func (c *Controller) Advance(dt time.Duration) int {
	if !c.Running() {
		c.elapsed = 0
		return 0
	}

	c.elapsed += dt
	n := 0
	for c.elapsed >= c.interval && c.Running() {
		c.elapsed -= c.interval
		c.Step()
		n++
		if n == maxCatchUp {
			c.elapsed = 0
			break
		}
	}
	if !c.Running() {
		c.elapsed = 0
	}
	return n
}

// Interval returns the tick interval.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// Paused reports whether the player paused the game.
func (c *Controller) Paused() bool {
	return c.paused
}

// Dialog returns the modal dialog the game reports round endings to.
func (c *Controller) Dialog() *modal.Modal {
	return c.dialog
}

// Game returns the driven game.
func (c *Controller) Game() *snake.Game {
	return c.game
}

func (c *Controller) acknowledge() {
	c.game.Acknowledge()
	c.logger.Debug("dialog dismissed", "state", c.game.State())
}

func (c *Controller) logEvent(ev snake.Event) {
	switch ev {
	case snake.EventNone, snake.EventMoved:
		return
	case snake.EventAte:
		c.logger.Debug("food eaten", "score", c.game.Score(), "length", c.game.Snake().Len())
	default:
		c.logger.Info(ev.String(), "score", c.game.RoundScore(), "tick", c.game.Ticks())
	}
	c.logger.Debug("state", "snapshot", c.game.DebugState())
}
