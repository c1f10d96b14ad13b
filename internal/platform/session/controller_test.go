package session

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	cfg := config.Default()
	cfg.Snake.TickIntervalMS = 100
	c, err := New(registry.Session{Config: cfg, Seed: 9}, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

func TestNewRejectsInvalidPalette(t *testing.T) {
	cfg := config.Default()
	cfg.Colors.Food = "plaid"
	if _, err := New(registry.Session{Config: cfg}, nil); err == nil {
		t.Error("New() should fail for an unknown color")
	}
}

func TestHandleActions(t *testing.T) {
	tests := []struct {
		name     string
		actions  []core.Action
		quit     bool
		paused   bool
		buffered snake.Direction
	}{
		{"steer", []core.Action{core.ActionUp}, false, false, snake.DirUp},
		{"pause", []core.Action{core.ActionPause}, false, true, snake.DirNone},
		{"steer ignored while paused", []core.Action{core.ActionPause, core.ActionRight}, false, true, snake.DirNone},
		{"unpause", []core.Action{core.ActionPause, core.ActionPause, core.ActionDown}, false, false, snake.DirDown},
		{"confirm without dialog", []core.Action{core.ActionConfirm}, false, false, snake.DirNone},
		{"none", []core.Action{core.ActionNone}, false, false, snake.DirNone},
		{"quit", []core.Action{core.ActionQuit}, true, false, snake.DirNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestController(t)
			quit := false
			for _, a := range tc.actions {
				quit = c.Handle(a)
			}
			if quit != tc.quit {
				t.Errorf("quit = %v, expected %v", quit, tc.quit)
			}
			if c.Paused() != tc.paused {
				t.Errorf("Paused() = %v, expected %v", c.Paused(), tc.paused)
			}
			if got := c.Game().Snake().Buffered(); got != tc.buffered {
				t.Errorf("Buffered() = %v, expected %v", got, tc.buffered)
			}
		})
	}
}

func TestAdvanceRunsDueTicks(t *testing.T) {
	c := newTestController(t)
	c.Handle(core.ActionRight)

	if n := c.Advance(50 * time.Millisecond); n != 0 {
		t.Errorf("Advance(50ms) ran %d ticks, expected 0", n)
	}
	if n := c.Advance(60 * time.Millisecond); n != 1 {
		t.Errorf("Advance(60ms) ran %d ticks, expected 1", n)
	}
	if n := c.Advance(190 * time.Millisecond); n != 2 {
		t.Errorf("Advance(190ms) ran %d ticks, expected 2", n)
	}
	if c.Game().Ticks() != 3 {
		t.Errorf("Ticks() = %d, expected 3", c.Game().Ticks())
	}
}

func TestAdvanceCatchUpIsBounded(t *testing.T) {
	c := newTestController(t)
	if n := c.Advance(10 * time.Second); n != maxCatchUp {
		t.Errorf("Advance(10s) ran %d ticks, expected %d", n, maxCatchUp)
	}
	if n := c.Advance(50 * time.Millisecond); n != 0 {
		t.Errorf("backlog should be dropped, ran %d ticks", n)
	}
}

func TestAdvanceWhilePaused(t *testing.T) {
	c := newTestController(t)
	c.Handle(core.ActionPause)

	if n := c.Advance(time.Second); n != 0 {
		t.Errorf("paused Advance ran %d ticks", n)
	}
	if ev := c.Step(); ev != snake.EventNone {
		t.Errorf("paused Step() = %v", ev)
	}

	c.Handle(core.ActionPause)
	if n := c.Advance(50 * time.Millisecond); n != 0 {
		t.Error("time spent paused must not count")
	}
}

func TestDialogBlocksUntilConfirmed(t *testing.T) {
	c := newTestController(t)
	c.Handle(core.ActionUp)

	// Default resolution 20 puts the head on row 10; the eleventh step leaves the grid
	var ev snake.Event
	for i := 0; i < 11; i++ {
		ev = c.Step()
	}
	if ev != snake.EventGameOver {
		t.Fatalf("last Step() = %v, expected game over", ev)
	}
	if !c.Dialog().Open() || c.Dialog().Title() != snake.GameOverTitle {
		t.Fatalf("game over dialog not shown: open=%v title=%q", c.Dialog().Open(), c.Dialog().Title())
	}
	if c.Running() {
		t.Error("Running() should be false while the dialog is open")
	}

	ticks := c.Game().Ticks()
	c.Advance(time.Second)
	c.Handle(core.ActionLeft)
	c.Handle(core.ActionPause)
	if c.Game().Ticks() != ticks || c.Paused() {
		t.Error("only confirm should be handled while the dialog is open")
	}

	c.Handle(core.ActionConfirm)
	if c.Dialog().Open() {
		t.Error("confirm should dismiss the dialog")
	}
	if c.Game().State() != snake.StateRunning {
		t.Errorf("State() = %v, expected running", c.Game().State())
	}
}
