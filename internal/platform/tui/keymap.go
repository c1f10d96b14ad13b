package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Pause, k.Quit},
	}
}

// NewKeyMap builds the direction bindings from cfg and adds the fixed ones.
func NewKeyMap(cfg config.Config) KeyMap {
	return KeyMap{
		Up:      binding(cfg.Keys.Up, "up"),
		Down:    binding(cfg.Keys.Down, "down"),
		Left:    binding(cfg.Keys.Left, "left"),
		Right:   binding(cfg.Keys.Right, "right"),
		Confirm: binding(config.ConfirmKeys, "ok"),
		Pause:   binding(config.PauseKeys, "pause"),
		Quit:    binding(config.QuitKeys, "quit"),
	}
}

// binding converts config key names to a key.Binding. Bubble Tea reports the
// space bar as " ", so both spellings are bound.
func binding(names []string, desc string) key.Binding {
	var keys, shown []string
	for _, n := range names {
		k := config.NormalizeKey(n)
		shown = append(shown, k)
		keys = append(keys, k)
		if k == "space" {
			keys = append(keys, " ")
		}
	}
	sort.Strings(shown)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(shown, "/"), desc),
	)
}

// Action translates a key message to a game action.
// Unbound keys map to core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}
