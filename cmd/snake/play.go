package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game with the selected frontend.

Controls:
  WASD/Arrows  - Steer (configurable under keys:)
  Enter/Space  - Dismiss a dialog
  P            - Pause
  Q/Esc        - Quit

Examples:
  snake play
  snake play --frontend window
  snake play --config ./my-snake.yaml --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q (run 'snake list' to see available frontends)", flagFrontend)
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel, flagFrontend)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fe, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	logger.Info("starting", "frontend", fe.ID(), "config", source, "seed", seed,
		"resolution", cfg.Grid.Resolution, "interval", cfg.TickInterval())

	if err := fe.Run(cmd.Context(), registry.Session{Config: cfg, Seed: seed, Logger: logger}); err != nil {
		logger.Error("frontend failed", "error", err)
		return fmt.Errorf("%s: %w", fe.ID(), err)
	}
	logger.Info("bye")
	return nil
}
