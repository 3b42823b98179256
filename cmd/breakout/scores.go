package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [layout]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for a layout (default: breakout).

Examples:
  breakout scores
  breakout scores breakout_striped
  breakout scores breakout --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored run for the layout")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := "breakout"
	if len(args) == 1 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'breakout list' to see layouts)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintf(out, "\nPlay 'breakout play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Score", "Tier", "Result", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "----", "------", "----")
	for i, r := range runs {
		result := "clear"
		if r.Status != "won" {
			result = fmt.Sprintf("%d left", r.BricksLeft)
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-6s  %-8s  %s\n",
			i+1, r.Score, r.Difficulty, result, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
