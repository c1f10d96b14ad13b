package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGame(t *testing.T, res, startLength int, seed int64) (*Game, *recordingSurface, *recordingDialogs) {
	t.Helper()
	surface := newRecordingSurface()
	dialogs := &recordingDialogs{}
	g, err := NewGame(testConfig(res, startLength), seed, surface, dialogs)
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	return g, surface, dialogs
}

// placeFood moves the food to p, out of the way of a scripted path.
func placeFood(g *Game, p core.Point) {
	g.food.cv.move(&g.food.cell, p)
}

func TestMoveRightThreeTicks(t *testing.T) {
	g, _, _ := newTestGame(t, 10, 3, 42)
	placeFood(g, core.Point{X: 0, Y: 0})

	if !g.Steer(core.ActionRight) {
		t.Fatal("Right should be accepted as the first direction")
	}
	for i := 0; i < 3; i++ {
		if ev := g.Tick(); ev != EventMoved {
			t.Fatalf("tick %d: event = %v, expected moved", i, ev)
		}
	}

	if g.Snake().Head() != (core.Point{X: 8, Y: 5}) {
		t.Errorf("Head() = %+v, expected (8, 5)", g.Snake().Head())
	}
	expected := []core.Point{{X: 7, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 5}}
	for i, p := range g.Snake().Body() {
		if p != expected[i] {
			t.Errorf("segment %d = %+v, expected %+v", i, p, expected[i])
		}
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
}

func TestIdleTicksDoNothing(t *testing.T) {
	g, _, _ := newTestGame(t, 10, 3, 1)
	before := g.Snapshot()

	for i := 0; i < 5; i++ {
		if ev := g.Tick(); ev != EventNone {
			t.Fatalf("idle tick event = %v, expected none", ev)
		}
	}

	after := g.Snapshot()
	if after.Head != before.Head || after.BodyLen != before.BodyLen || after.State != StateRunning {
		t.Errorf("idle ticks changed state: %+v -> %+v", before, after)
	}
}

func TestBufferedDirectionCommitsAtTick(t *testing.T) {
	g, _, _ := newTestGame(t, 10, 3, 1)
	placeFood(g, core.Point{X: 0, Y: 0})

	g.Steer(core.ActionRight)
	g.Tick()

	// Several presses between ticks: the last accepted one wins
	g.Steer(core.ActionUp)
	g.Steer(core.ActionLeft) // reversal of right, rejected
	g.Steer(core.ActionDown)
	if g.Snake().Direction() != DirRight {
		t.Fatal("direction must not change before the tick")
	}

	g.Tick()
	if g.Snake().Direction() != DirDown {
		t.Errorf("Direction() = %v, expected down", g.Snake().Direction())
	}
	if g.Snake().Head() != (core.Point{X: 6, Y: 6}) {
		t.Errorf("Head() = %+v, expected (6, 6)", g.Snake().Head())
	}
}

func TestEatFood(t *testing.T) {
	g, surface, _ := newTestGame(t, 10, 3, 99)
	placeFood(g, core.Point{X: 6, Y: 5})

	g.Steer(core.ActionRight)
	if ev := g.Tick(); ev != EventAte {
		t.Fatalf("event = %v, expected ate", ev)
	}

	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
	if g.Snake().Len() != 4 {
		t.Errorf("Len() = %d, expected 4", g.Snake().Len())
	}
	pos, placed := g.Food().Position()
	if !placed || g.Snake().Occupies(pos) {
		t.Errorf("food at %+v (placed=%v) overlaps the snake", pos, placed)
	}
	if len(surface.rects) != g.Snake().Len()+2 {
		t.Errorf("surface holds %d rects, expected %d", len(surface.rects), g.Snake().Len()+2)
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name  string
		steer []core.Action
		ticks int
	}{
		{"right wall", []core.Action{core.ActionRight}, 5}, // x: 5 -> 10
		{"left wall", []core.Action{core.ActionUp, core.ActionLeft}, 7},
		{"top wall", []core.Action{core.ActionUp}, 6}, // y: 5 -> -1
		{"bottom wall", []core.Action{core.ActionDown}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _, dialogs := newTestGame(t, 10, 3, 3)
			placeFood(g, core.Point{X: 9, Y: 9}) // off every path
			g.score = 4

			var last Event
			for i := 0; i < tc.ticks; i++ {
				if i < len(tc.steer) {
					g.Steer(tc.steer[i])
				}
				last = g.Tick()
			}

			if last != EventGameOver {
				t.Fatalf("last event = %v, expected game over", last)
			}
			assertResetRound(t, g, 3)
			if g.State() != StateGameOver {
				t.Errorf("State() = %v, expected game over", g.State())
			}
			if g.RoundScore() != 4 {
				t.Errorf("RoundScore() = %d, expected 4", g.RoundScore())
			}
			if len(dialogs.shown) != 1 || dialogs.shown[0].title != GameOverTitle {
				t.Fatalf("dialogs = %+v, expected one game over dialog", dialogs.shown)
			}
			if !strings.Contains(dialogs.shown[0].message, "Your score: 4") {
				t.Errorf("dialog message %q should report the score", dialogs.shown[0].message)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g, _, _ := newTestGame(t, 10, 5, 11)
	placeFood(g, core.Point{X: 0, Y: 0})

	// A 5-segment body is long enough to run into with a tight U-turn
	moves := []core.Action{core.ActionUp, core.ActionRight, core.ActionDown}
	for _, a := range moves {
		g.Steer(a)
		if ev := g.Tick(); ev != EventMoved {
			t.Fatalf("unexpected event %v", ev)
		}
	}
	g.Steer(core.ActionLeft)
	if ev := g.Tick(); ev != EventGameOver {
		t.Fatalf("event = %v, expected game over", ev)
	}
	assertResetRound(t, g, 5)
}

func TestGameOverBlocksUntilAcknowledged(t *testing.T) {
	g, _, _ := newTestGame(t, 10, 3, 5)
	placeFood(g, core.Point{X: 0, Y: 0})
	g.Steer(core.ActionUp)
	for g.State() == StateRunning {
		g.Tick()
	}

	if g.Steer(core.ActionRight) {
		t.Error("steering should be ignored while a dialog is pending")
	}
	if ev := g.Tick(); ev != EventNone {
		t.Errorf("Tick() while game over = %v, expected none", ev)
	}

	g.Acknowledge()
	if g.State() != StateRunning {
		t.Fatalf("State() = %v, expected running", g.State())
	}
	if !g.Steer(core.ActionRight) {
		t.Error("steering should work again after acknowledging")
	}
}

func TestFoodKeptOrReplacedOnGameOver(t *testing.T) {
	g, _, _ := newTestGame(t, 10, 3, 8)

	// Food outside the reset snake stays put
	placeFood(g, core.Point{X: 9, Y: 0})
	g.Steer(core.ActionDown)
	for g.State() == StateRunning {
		g.Tick()
	}
	if pos, _ := g.Food().Position(); pos != (core.Point{X: 9, Y: 0}) {
		t.Errorf("food moved to %+v, expected to stay at (9, 0)", pos)
	}
	g.Acknowledge()

	// Food on the starting line is moved off it
	placeFood(g, core.Point{X: 3, Y: 5})
	g.Steer(core.ActionDown)
	for g.State() == StateRunning {
		g.Tick()
	}
	if pos, _ := g.Food().Position(); g.Snake().Occupies(pos) {
		t.Errorf("food left under the reset snake at %+v", pos)
	}
}

func TestWinOnTinyGrid(t *testing.T) {
	// 2x2 grid, head (1,1), body (0,1): the snake fills the grid at score 2
	g, surface, dialogs := newTestGame(t, 2, 1, 21)
	if g.WinScore() != 2 {
		t.Fatalf("WinScore() = %d, expected 2", g.WinScore())
	}

	placeFood(g, core.Point{X: 1, Y: 0})
	g.Steer(core.ActionUp)
	if ev := g.Tick(); ev != EventAte {
		t.Fatalf("first tick = %v, expected ate", ev)
	}

	placeFood(g, core.Point{X: 0, Y: 0})
	g.Steer(core.ActionLeft)
	if ev := g.Tick(); ev != EventWon {
		t.Fatalf("second tick = %v, expected won", ev)
	}

	if g.State() != StateWon {
		t.Errorf("State() = %v, expected won", g.State())
	}
	if len(dialogs.shown) != 1 || dialogs.shown[0].title != WinTitle {
		t.Fatalf("dialogs = %+v, expected one win dialog", dialogs.shown)
	}
	if g.Tick() != EventNone || g.Score() != 2 {
		t.Error("the round must stay frozen until the win is acknowledged")
	}
	if surface.colors[g.snake.head.rect] != core.ColorGreen {
		t.Error("snake should be recolored on win")
	}

	g.Acknowledge()
	assertResetRound(t, g, 1)
	if g.State() != StateRunning {
		t.Errorf("State() = %v, expected running", g.State())
	}
	if surface.colors[g.snake.head.rect] != core.ColorBrightWhite {
		t.Error("head color should be restored for the new round")
	}
}

func TestWinScoreFormula(t *testing.T) {
	g, _, _ := newTestGame(t, 10, 3, 1)
	if g.WinScore() != 100-3-1 {
		t.Errorf("WinScore() = %d, expected 96", g.WinScore())
	}
}

func TestSurfaceTracksLiveCells(t *testing.T) {
	g, surface, _ := newTestGame(t, 12, 4, 2024)
	steer := []core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft}

	for i := 0; i < 500; i++ {
		// Seven steps in one direction always reach a wall from the center
		g.Steer(steer[(i/7)%len(steer)])
		g.Tick()
		if g.State() != StateRunning {
			g.Acknowledge()
		}
		if _, placed := g.Food().Position(); placed {
			if len(surface.rects) != g.Snake().Len()+2 {
				t.Fatalf("tick %d: surface holds %d rects, expected %d", i, len(surface.rects), g.Snake().Len()+2)
			}
		}
	}
	if surface.deleted == 0 {
		t.Error("expected at least one reset to delete segments")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, _, _ := newTestGame(t, 15, 3, 12345)
		steer := []core.Action{core.ActionDown, core.ActionRight, core.ActionUp, core.ActionRight}
		for i := 0; i < 200; i++ {
			if i%4 == 0 {
				g.Steer(steer[(i/4)%len(steer)])
			}
			g.Tick()
			if g.State() != StateRunning {
				g.Acknowledge()
			}
		}
		return g.Snapshot()
	}

	if s1, s2 := run(), run(); s1 != s2 {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestDebugState(t *testing.T) {
	g, _, _ := newTestGame(t, 10, 3, 1)
	out := g.DebugState()
	for _, want := range []string{"Tick: 0", "Score: 0", "State: running", "Head: (5, 5)"} {
		if !strings.Contains(out, want) {
			t.Errorf("DebugState() missing %q:\n%s", want, out)
		}
	}
}

func assertResetRound(t *testing.T, g *Game, startLength int) {
	t.Helper()
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0 after reset", g.Score())
	}
	if g.Snake().Len() != startLength {
		t.Errorf("Len() = %d, expected %d after reset", g.Snake().Len(), startLength)
	}
	if g.Snake().Head() != g.Grid().Center() {
		t.Errorf("Head() = %+v, expected center after reset", g.Snake().Head())
	}
	if g.Snake().Direction() != DirNone {
		t.Error("direction should be unset after reset")
	}
}
