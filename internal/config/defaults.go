package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in Breakout tuning. It matches
// defaults/breakout.yaml and is used when the embedded file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		TickRate: 60,
		Arena:    ArenaConfig{Width: 640, Height: 640},
		Lives:    5,
		Difficulty: DifficultyConfig{
			Initial:  "easy",
			Escalate: true,
		},
		Ball: BallConfig{
			Size:         6,
			Speed:        Tiered{Easy: 250, Normal: 300, Hard: 350},
			LaunchSpeed:  256,
			LaunchOffset: 8,
			English:      4,
		},
		Paddle: PaddleConfig{
			Y:      120,
			Height: 8,
			Width:  Tiered{Easy: 64, Normal: 48, Hard: 32},
			Speed:  256,
		},
		Pointer: PointerConfig{Size: 8},
		Layouts: map[string]GridConfig{
			"tiered": {
				Rows:       5,
				Cols:       24,
				TopMargin:  32,
				CellMargin: Vec{X: 2, Y: 4},
				CellSize:   Vec{X: 24, Y: 12},
			},
			"striped": {
				Rows:       6,
				Cols:       18,
				TopMargin:  64,
				CellMargin: Vec{X: 2, Y: 16},
				CellSize:   Vec{X: 32, Y: 16},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout", "breakout_striped":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
