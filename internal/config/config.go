// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MaxResolution is the largest supported playfield side, in cells.
const MaxResolution = 100

// Config contains all configuration for a snake session.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Window WindowConfig `yaml:"window"`
	Snake  SnakeConfig  `yaml:"snake"`
	Keys   KeysConfig   `yaml:"keys"`
	Colors ColorsConfig `yaml:"colors"`
}

// GridConfig defines the playfield grid.
type GridConfig struct {
	Resolution int `yaml:"resolution"`
}

// WindowConfig defines the fixed window geometry.
// Width and Height are in playfield pixels; the terminal frontend draws one
// pixel per character cell, the window frontend multiplies by Scale.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
}

// SnakeConfig defines the snake and the tick loop.
type SnakeConfig struct {
	StartLength    int `yaml:"start_length"`
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// KeysConfig lists the key names bound to each direction.
type KeysConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

// ColorsConfig names the palette colors, see core.ParseColor.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Frame      string `yaml:"frame"`
	Head       string `yaml:"head"`
	Body       string `yaml:"body"`
	Food       string `yaml:"food"`
}

// Palette is ColorsConfig resolved to core colors.
type Palette struct {
	Background core.Color
	Frame      core.Color
	Head       core.Color
	Body       core.Color
	Food       core.Color
}

// TickInterval returns the fixed simulation interval.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Snake.TickIntervalMS) * time.Millisecond
}

// Palette resolves the configured color names.
func (c Config) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		val  string
		dst  *core.Color
	}{
		{"colors.background", c.Colors.Background, &p.Background},
		{"colors.frame", c.Colors.Frame, &p.Frame},
		{"colors.head", c.Colors.Head, &p.Head},
		{"colors.body", c.Colors.Body, &p.Body},
		{"colors.food", c.Colors.Food, &p.Food},
	}
	for _, f := range fields {
		col, err := core.ParseColor(f.val)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// Bindings returns the normalized direction key names mapped to their actions.
func (c Config) Bindings() map[string]core.Action {
	out := make(map[string]core.Action)
	groups := []struct {
		keys   []string
		action core.Action
	}{
		{c.Keys.Up, core.ActionUp},
		{c.Keys.Down, core.ActionDown},
		{c.Keys.Left, core.ActionLeft},
		{c.Keys.Right, core.ActionRight},
	}
	for _, g := range groups {
		for _, k := range g.keys {
			out[NormalizeKey(k)] = g.action
		}
	}
	return out
}
