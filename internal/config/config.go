// Package config loads game tuning from YAML with embedded defaults.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// BreakoutConfig holds all tunable Breakout parameters. Rates are given per
// second and converted to per-frame values with TickRate.
type BreakoutConfig struct {
	TickRate   int                   `yaml:"tick_rate"` // simulation frames per second
	Arena      ArenaConfig           `yaml:"arena"`
	Lives      uint32                `yaml:"lives"`
	Difficulty DifficultyConfig      `yaml:"difficulty"`
	Ball       BallConfig            `yaml:"ball"`
	Paddle     PaddleConfig          `yaml:"paddle"`
	Pointer    PointerConfig         `yaml:"pointer"`
	Layouts    map[string]GridConfig `yaml:"layouts"`
}

// ArenaConfig is the size of the playfield in world units.
type ArenaConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// DifficultyConfig selects the starting tier.
type DifficultyConfig struct {
	Initial  string `yaml:"initial"`  // "easy", "normal" or "hard"
	Escalate bool   `yaml:"escalate"` // upper rows raise the tier when hit
}

// Tiered holds one value per difficulty tier.
type Tiered struct {
	Easy   float32 `yaml:"easy"`
	Normal float32 `yaml:"normal"`
	Hard   float32 `yaml:"hard"`
}

func (t Tiered) positive() bool {
	return t.Easy > 0 && t.Normal > 0 && t.Hard > 0
}

// BallConfig tunes the ball.
type BallConfig struct {
	Size         float32 `yaml:"size"`
	Speed        Tiered  `yaml:"speed"`         // units per second
	LaunchSpeed  float32 `yaml:"launch_speed"`  // units per second
	LaunchOffset float32 `yaml:"launch_offset"` // spawn height above the paddle center
	English      float32 `yaml:"english"`       // sideways skew per unit of paddle offset
}

// PaddleConfig tunes the paddle.
type PaddleConfig struct {
	Y      float32 `yaml:"y"`
	Height float32 `yaml:"height"`
	Width  Tiered  `yaml:"width"`
	Speed  float32 `yaml:"speed"` // units per second
}

// PointerConfig tunes the aim pointer.
type PointerConfig struct {
	Size float32 `yaml:"size"`
}

// GridConfig is the brick layout for one pattern.
type GridConfig struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	TopMargin  float32 `yaml:"top_margin"`
	CellMargin Vec     `yaml:"cell_margin"`
	CellSize   Vec     `yaml:"cell_size"`
}

// Vec is a YAML friendly pair.
type Vec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// PerFrame converts a per-second rate to units per frame.
func (c BreakoutConfig) PerFrame(perSecond float32) float32 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return perSecond / float32(rate)
}

// Layout returns the grid for the named pattern.
func (c BreakoutConfig) Layout(name string) (GridConfig, bool) {
	g, ok := c.Layouts[name]
	return g, ok
}

// Validate reports the first invalid field.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have a positive size", ErrInvalid)
	case c.Lives == 0:
		return fmt.Errorf("%w: lives must be at least 1", ErrInvalid)
	case c.Ball.Size <= 0 || c.Ball.LaunchSpeed <= 0 || !c.Ball.Speed.positive():
		return fmt.Errorf("%w: ball size and speeds must be positive", ErrInvalid)
	case c.Paddle.Height <= 0 || c.Paddle.Speed <= 0 || !c.Paddle.Width.positive():
		return fmt.Errorf("%w: paddle size and speed must be positive", ErrInvalid)
	case c.Pointer.Size <= 0:
		return fmt.Errorf("%w: pointer size must be positive", ErrInvalid)
	}
	switch c.Difficulty.Initial {
	case "easy", "normal", "hard":
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, c.Difficulty.Initial)
	}
	for name, g := range c.Layouts {
		if g.Rows < 1 || g.Cols < 1 {
			return fmt.Errorf("%w: layout %s needs at least one row and column", ErrInvalid, name)
		}
		if g.CellSize.X <= 0 || g.CellSize.Y <= 0 {
			return fmt.Errorf("%w: layout %s cell size must be positive", ErrInvalid, name)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings return "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}
