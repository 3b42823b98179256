// breakout is a terminal Breakout game.
//
// Usage:
//
//	breakout list              - List brick layouts
//	breakout play [layout]     - Play a layout, or pick one from the menu
//	breakout serve             - Start SSH server for remote play
//	breakout scores [layout]   - Show high scores
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed
//	--db <path>          - Set database path (default: ~/.arcade/breakout.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the layouts
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout in your terminal",
	Long: `Break every brick with a single ball and a paddle. Bricks near the top
speed the ball up and shrink the paddle.

Available commands:
  list     - Show the brick layouts
  play     - Play a layout (menu when none is given)
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  breakout play
  breakout play breakout_striped --difficulty hard
  breakout serve --ssh :2222
  breakout scores breakout`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/breakout.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the CLI logger writing to w at --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	}), nil
}
