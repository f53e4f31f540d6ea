package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
	"github.com/vovakirdan/tui-bricks/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and difficulty profiles",
	Long: `Shows every registered game and the level layout each difficulty produces
with the active config (--config, ~/.bricks/configs or ./configs).`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return nil
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxLen := len("Difficulty")
	for _, g := range games {
		maxLen = max(maxLen, len(g.Preset))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "Difficulty", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "----------", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, g.Preset, g.Title)
	}

	columns := cfg.Bricks.Columns
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Difficulty profiles:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-8s  %-10s  %-4s  %-6s  %s\n", "Name", "Speed", "Rows", "Bricks", "Hits by row")
	fmt.Fprintf(out, "  %-8s  %-10s  %-4s  %-6s  %s\n", "----", "-----", "----", "------", "-----------")
	for _, g := range games {
		profile, err := bricks.ResolveProfile(string(g.Preset))
		if err != nil {
			continue
		}
		hits := make([]int, profile.RowCount)
		for r := range hits {
			hits[r] = profile.HitsForRow(r)
		}
		speed := fmt.Sprintf("(%g,%g)", profile.BallSpeed.X, profile.BallSpeed.Y)
		fmt.Fprintf(out, "  %-8s  %-10s  %-4d  %-6d  %v\n", g.Preset, speed, profile.RowCount, profile.RowCount*columns, hits)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'bricks play <difficulty>' to play.")
	return nil
}
