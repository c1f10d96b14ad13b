package window

import (
	"context"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

// FrontendID is the command-line name of the graphical frontend.
const FrontendID = "window"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in an Ebitengine window.
type Frontend struct{}

func (Frontend) ID() string    { return FrontendID }
func (Frontend) Title() string { return "Graphical window (Ebitengine)" }

func (Frontend) Run(ctx context.Context, s registry.Session) error {
	return Run(ctx, s)
}
