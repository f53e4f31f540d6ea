package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/platform/tui"
	"github.com/vovakirdan/tui-bricks/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play bricks",
	Long: `Start a game at the given difficulty, or pick one from a menu.

Controls:
  Mouse        - Move the paddle
  Left/A       - Nudge paddle left
  Right/D      - Nudge paddle right
  R            - Restart (after game over)
  Esc          - Back to the difficulty picker
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulties:
  easy    - 5 rows, slow ball, single-hit bricks
  medium  - 6 rows, faster ball, some bricks take 2 hits
  hard    - 7 rows, fast ball, bricks take up to 3 hits

Examples:
  bricks play
  bricks play medium
  bricks play hard --config ./my-bricks.yaml`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"easy", "medium", "hard"},
	RunE:      runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	var preset config.DifficultyPreset
	if len(args) == 1 {
		p, err := config.ParseDifficultyPreset(args[0])
		if err != nil {
			return err
		}
		preset = p
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Picker loop: Esc in a game returns here unless a difficulty was passed.
	for {
		if preset == "" {
			menuResult, menuErr := tui.RunMenu(cfg, gameCfg.Bricks.Columns)
			if menuErr != nil {
				return menuErr
			}
			cfg = menuResult.Config
			if menuResult.Quit {
				return nil
			}
			preset = menuResult.Difficulty
		}

		game, err := registry.Create(preset)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		logger.Info("starting game", "difficulty", preset, "fps", cfg.TickRate)
		result, err := tui.Run(game, logger, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		cfg = result.Config
		logger.Info("game ended", "score", result.State.Score, "level", result.State.Level, "game_over", result.State.GameOver)

		if !result.Back || len(args) == 1 {
			return nil
		}
		preset = ""
	}
}
