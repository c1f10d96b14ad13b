package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/snake.yaml and is the last fallback if the embedded
// file cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Resolution: 20,
		},
		Window: WindowConfig{
			Title:  "Snake",
			Width:  40,
			Height: 20,
			Scale:  16,
		},
		Snake: SnakeConfig{
			StartLength:    5,
			TickIntervalMS: 80,
		},
		Keys: KeysConfig{
			Up:    []string{"w", "up"},
			Down:  []string{"s", "down"},
			Left:  []string{"a", "left"},
			Right: []string{"d", "right"},
		},
		Colors: ColorsConfig{
			Background: "black",
			Frame:      "gray",
			Head:       "bright_white",
			Body:       "white",
			Food:       "green",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
