// bricks is a terminal brick breaker: steer the paddle with the mouse
// and clear the grid.
//
// Usage:
//
//	bricks play [difficulty]   - Play (opens the difficulty picker without an argument)
//	bricks list                - List games and difficulty profiles
//	bricks simulate            - Run a headless autopilot game and print the result
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Custom bricks.yaml
//	--log-file <path>     - Write logs to a file instead of stderr
//	--log-level <level>   - debug, info, warn, error (default: warn)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Bricks - a brick breaker for your terminal",
	Long: `Bricks is a terminal brick breaker. Move the mouse to steer the paddle,
keep the ball in play and clear every brick to reach the next level.

Available commands:
  play      - Play a game (pick a difficulty or pass one)
  list      - Show games and difficulty profiles
  simulate  - Run a headless game with an autopilot

Examples:
  bricks play
  bricks play hard
  bricks play --fps 30 --log-file bricks.log --log-level info
  bricks simulate --difficulty medium --ticks 5000`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		bricks.SetConfigPath(flagConfig)
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom bricks config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: stderr)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the logger from the global flags. The returned closer
// releases the log file, if one was opened.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bricks",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads the bricks config named by --config, falling back to the
// default search path.
func loadConfig(logger *log.Logger) (config.BricksConfig, error) {
	cfg, err := config.LoadBricks(flagConfig)
	if err != nil {
		return config.BricksConfig{}, err
	}
	logger.Debug("config loaded", "path", flagConfig, "arena", fmt.Sprintf("%gx%g", cfg.Arena.Width, cfg.Arena.Height))
	return cfg, nil
}
