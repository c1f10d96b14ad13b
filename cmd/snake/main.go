// snake is a single-player Snake game for the terminal or a graphical window.
//
// Usage:
//
//	snake                    - Play in the terminal
//	snake play               - Same as above
//	snake list               - List available frontends
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--frontend <id>     - Frontend to play with: tui or window (default: tui)
//	--config <path>     - Path to a config YAML (default: search path)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
	_ "github.com/vovakirdan/tui-snake/internal/platform/window"
)

var (
	// Global flags
	flagFrontend string
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer, eat, grow",
	Long: `Snake is the classic game: steer the snake around a square grid, eat
the food to grow, and avoid the walls and your own tail. Fill the grid
to win.

Available commands:
  play     - Play a game (the default)
  list     - Show the available frontends
  config   - Print the effective configuration

Examples:
  snake
  snake --frontend window
  snake play --seed 42
  snake config --default > ~/.snake/config.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagFrontend, "frontend", "tui", "Frontend: tui or window")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
