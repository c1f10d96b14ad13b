// Package snake implements the snake game rules: grid, snake, food, and the
// per-tick state machine. It draws through the Surface interface and reports
// end-of-round messages through Dialogs; it knows nothing about terminals or
// windows.
package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the game state machine position.
type State int

const (
	StateRunning  State = iota
	StateGameOver       // game-over dialog pending
	StateWon            // win dialog pending
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Event describes what a tick did.
type Event int

const (
	EventNone     Event = iota // nothing moved (idle or not running)
	EventMoved                 // snake advanced
	EventAte                   // snake advanced onto food
	EventGameOver              // collision, round reset
	EventWon                   // snake filled the grid
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventGameOver:
		return "game_over"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Dialog titles and messages.
const (
	GameOverTitle = "Game Over"
	WinTitle      = "Congratulations"
)

// Game owns the whole game state for one session.
type Game struct {
	grid    Grid
	palette config.Palette
	surface Surface
	dialogs Dialogs
	rng     *rand.Rand

	snake *Snake
	food  *Food
	score Score
	state State

	tick       uint64
	roundScore int // score shown in the last end-of-round dialog
}

// NewGame builds the grid, snake and food described by cfg.
// A nil surface or dialogs collaborator is replaced by a no-op.
func NewGame(cfg config.Config, seed int64, surface Surface, dialogs Dialogs) (*Game, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	if surface == nil {
		surface = &nopSurface{}
	}
	if dialogs == nil {
		dialogs = nopDialogs{}
	}

	g := &Game{
		grid:    NewGrid(cfg.Grid.Resolution, cfg.Window.Width, cfg.Window.Height),
		palette: palette,
		surface: surface,
		dialogs: dialogs,
		rng:     rand.New(rand.NewSource(seed)),
	}
	g.snake = NewSnake(g.grid, surface, cfg.Snake.StartLength, palette.Head, palette.Body)

	g.food, err = NewFood(g.grid, surface, g.rng, palette.Food, g.snake)
	if err != nil {
		return nil, fmt.Errorf("placing initial food: %w", err)
	}
	return g, nil
}

// Steer buffers the direction for a steering action.
// It reports whether the input was accepted.
func (g *Game) Steer(a core.Action) bool {
	if g.state != StateRunning {
		return false
	}
	return g.snake.SetDirection(DirectionFromAction(a))
}

// Tick advances the game by one fixed step. It does nothing unless running.
func (g *Game) Tick() Event {
	if g.state != StateRunning {
		return EventNone
	}
	g.tick++

	g.snake.CommitDirection()
	if g.snake.Direction() == DirNone {
		return EventNone
	}
	g.snake.Advance()

	if g.snake.HitsSelf() || !g.grid.Contains(g.snake.Head()) {
		g.gameOver()
		return EventGameOver
	}

	event := EventMoved
	if g.food.At(g.snake.Head()) {
		event = EventAte
		if err := g.food.Eat(g.snake, &g.score); errors.Is(err, ErrGridFull) {
			g.win()
			return EventWon
		}
	}

	if int(g.score) == g.WinScore() {
		g.win()
		return EventWon
	}
	return event
}

// Acknowledge resolves a pending end-of-round dialog.
// After a game over the game simply resumes; after a win a new round starts.
func (g *Game) Acknowledge() {
	switch g.state {
	case StateGameOver:
		g.state = StateRunning
	case StateWon:
		g.newRound()
		g.state = StateRunning
	}
}

// gameOver shows the final score and resets the round immediately.
// The food stays where it is unless the reset snake now covers it.
func (g *Game) gameOver() {
	g.roundScore = int(g.score)
	g.state = StateGameOver
	g.dialogs.ShowInfo(GameOverTitle, fmt.Sprintf("Game Over\nYour score: %d", g.roundScore))

	g.snake.Reset()
	g.score.Reset()

	if pos, ok := g.food.Position(); !ok || g.snake.Occupies(pos) {
		_ = g.food.Place(g.snake) // a freshly reset snake never fills the grid
	}
}

func (g *Game) win() {
	g.roundScore = int(g.score)
	g.state = StateWon
	g.snake.Recolor(g.palette.Food, g.palette.Food)
	g.dialogs.ShowInfo(WinTitle, fmt.Sprintf("Congratulations, you win\nYour score: %d", g.roundScore))
}

func (g *Game) newRound() {
	g.snake.Reset()
	g.score.Reset()
	_ = g.food.Place(g.snake)
}

// WinScore is the score at which the snake fills every cell.
func (g *Game) WinScore() int {
	return g.grid.Cells() - g.snake.StartLength() - 1
}

// State returns the current state machine position.
func (g *Game) State() State {
	return g.state
}

// Score returns the score of the current round.
func (g *Game) Score() int {
	return int(g.score)
}

// RoundScore returns the score reported by the last end-of-round dialog.
func (g *Game) RoundScore() int {
	return g.roundScore
}

// Ticks returns the number of ticks processed while running.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Grid returns the playfield grid.
func (g *Game) Grid() Grid {
	return g.grid
}

// Snake returns the snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food.
func (g *Game) Food() *Food {
	return g.food
}
