package config

import (
	"errors"
	"fmt"
)

// Validate checks every field and returns all problems joined together.
// Each problem wraps ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	res := c.Grid.Resolution
	if res < 2 || res > MaxResolution {
		bad("grid.resolution must be in [2, %d], got %d", MaxResolution, res)
	}
	if c.Window.Width < res {
		bad("window.width must be at least grid.resolution (%d), got %d", res, c.Window.Width)
	}
	if c.Window.Height < res {
		bad("window.height must be at least grid.resolution (%d), got %d", res, c.Window.Height)
	}
	if c.Window.Scale < 1 {
		bad("window.scale must be positive, got %d", c.Window.Scale)
	}

	// The body is laid out behind the head, which starts at the center.
	if c.Snake.StartLength < 1 || c.Snake.StartLength > res/2 {
		bad("snake.start_length must be in [1, %d], got %d", res/2, c.Snake.StartLength)
	}
	if c.Snake.TickIntervalMS <= 0 {
		bad("snake.tick_interval_ms must be positive, got %d", c.Snake.TickIntervalMS)
	}

	errs = append(errs, c.validateKeys()...)

	if _, err := c.Palette(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}

	return errors.Join(errs...)
}

func (c Config) validateKeys() []error {
	var errs []error
	owner := make(map[string]string)
	groups := []struct {
		name string
		keys []string
	}{
		{"keys.up", c.Keys.Up},
		{"keys.down", c.Keys.Down},
		{"keys.left", c.Keys.Left},
		{"keys.right", c.Keys.Right},
	}

	for _, g := range groups {
		if len(g.keys) == 0 {
			errs = append(errs, fmt.Errorf("%w: %s must bind at least one key", ErrInvalid, g.name))
			continue
		}
		for _, raw := range g.keys {
			k := NormalizeKey(raw)
			switch {
			case !KnownKey(k):
				errs = append(errs, fmt.Errorf("%w: %s: unknown key %q", ErrInvalid, g.name, raw))
			case reservedKey(k):
				errs = append(errs, fmt.Errorf("%w: %s: key %q is reserved", ErrInvalid, g.name, raw))
			case owner[k] != "" && owner[k] != g.name:
				errs = append(errs, fmt.Errorf("%w: %s: key %q already bound in %s", ErrInvalid, g.name, raw, owner[k]))
			default:
				owner[k] = g.name
			}
		}
	}
	return errs
}
