package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the complete game state for determinism testing and debug logs.
type Snapshot struct {
	Tick       uint64
	State      State
	Score      int
	Head       core.Point
	Dir        Direction
	Buffered   Direction
	BodyLen    int
	Food       core.Point
	FoodPlaced bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	food, placed := g.food.Position()
	return Snapshot{
		Tick:       g.tick,
		State:      g.state,
		Score:      int(g.score),
		Head:       g.snake.Head(),
		Dir:        g.snake.Direction(),
		Buffered:   g.snake.Buffered(),
		BodyLen:    g.snake.Len(),
		Food:       food,
		FoodPlaced: placed,
	}
}

// DebugState returns a multi-line description of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, State: %s\n", s.Tick, s.Score, s.State)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s (buffered %s)\n", s.BodyLen, s.Dir, s.Buffered)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d) placed=%v\n", s.Head.X, s.Head.Y, s.Food.X, s.Food.Y, s.FoodPlaced)
	return b.String()
}
