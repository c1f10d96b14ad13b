package tui

import (
	"context"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

// FrontendID is the command-line name of the terminal frontend.
const FrontendID = "tui"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in the terminal.
type Frontend struct{}

func (Frontend) ID() string    { return FrontendID }
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

func (Frontend) Run(ctx context.Context, s registry.Session) error {
	return Run(ctx, s)
}
