package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/sfx"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play Breakout",
	Long: `Start playing. Without a layout the menu opens, and you return to it
after each game.

Controls:
  Left/Right, A/D  - Move the paddle (the mouse works too)
  Space            - Launch the ball
  P                - Pause
  R                - Restart (after the round ends)
  Esc/B            - Back (after the round ends or while paused)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start slow with the widest paddle
  normal - Start at the middle tier
  hard   - Start fast with the narrowest paddle
  fixed  - Keep the starting tier; top rows no longer escalate

Examples:
  breakout play
  breakout play breakout --difficulty hard
  breakout play breakout_striped --config ./my-breakout.yaml
  breakout play --mute --log-file /tmp/breakout.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom Breakout config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal belongs to the game)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound effect volume, 0 to 1")
}

// applyGameFlags validates and installs --config and --difficulty.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown --difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadBreakout(flagConfig); err != nil {
			return err
		}
	}
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	return nil
}

func runPlay(_ *cobra.Command, args []string) error {
	if len(args) == 1 && !registry.Exists(args[0]) {
		return fmt.Errorf("unknown layout %q (run 'breakout list' to see layouts)", args[0])
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Logger:   logger,
	}

	if !flagMute {
		player := sfx.New(logger, flagVolume)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			cfg.Audio = player
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	if len(args) == 1 {
		cfg.Difficulty = flagDifficulty
		_, err := playOne(args[0], store, cfg)
		return err
	}
	return menuLoop(store, cfg)
}

// playLogger opens --log-file, or discards logs when none is given.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		l, err := newLogger(io.Discard)
		return l, func() {}, err
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l, func() { f.Close() }, nil
}

func playOne(gameID string, store *storage.Store, cfg core.RuntimeConfig) (tui.RunResult, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return tui.RunResult{}, err
	}
	return tui.Run(game, store, cfg)
}

// menuLoop alternates between the menu, the scoreboard and games until
// the player quits.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig) error {
	cfg.Difficulty = flagDifficulty
	var lastRun string
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg, lastRun)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			played, err := playOne(res.GameID, store, cfg)
			if err != nil {
				return err
			}
			if played.LastRun != "" {
				lastRun = played.LastRun
			}
			if played.Quit {
				return nil
			}
		}
	}
}
