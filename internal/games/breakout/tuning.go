package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// PerTier holds one value per difficulty tier.
type PerTier[T any] [3]T

// At returns the value for tier d. Out-of-range tiers read as Hard.
func (p PerTier[T]) At(d Difficulty) T {
	if d < Easy {
		d = Easy
	}
	if d > Hard {
		d = Hard
	}
	return p[d]
}

// Tuning is the per-frame form of the configuration. All speeds are in
// world units per frame.
type Tuning struct {
	Arena    core.Vec2
	Lives    uint32
	Initial  Difficulty
	Escalate bool

	BallSize     float32
	BallSpeed    PerTier[float32]
	LaunchSpeed  float32
	LaunchOffset float32
	English      float32

	PaddleY      float32
	PaddleHeight float32
	PaddleWidth  PerTier[float32]
	PaddleSpeed  float32

	PointerSize float32
}

// TuningFromConfig converts a validated config to frame units.
func TuningFromConfig(cfg config.BreakoutConfig) (Tuning, error) {
	if err := cfg.Validate(); err != nil {
		return Tuning{}, err
	}
	initial, ok := ParseDifficulty(cfg.Difficulty.Initial)
	if !ok {
		return Tuning{}, fmt.Errorf("breakout: unknown difficulty %q", cfg.Difficulty.Initial)
	}
	tiered := func(t config.Tiered, scale func(float32) float32) PerTier[float32] {
		return PerTier[float32]{scale(t.Easy), scale(t.Normal), scale(t.Hard)}
	}
	same := func(v float32) float32 { return v }

	return Tuning{
		Arena:    core.V(cfg.Arena.Width, cfg.Arena.Height),
		Lives:    cfg.Lives,
		Initial:  initial,
		Escalate: cfg.Difficulty.Escalate,

		BallSize:     cfg.Ball.Size,
		BallSpeed:    tiered(cfg.Ball.Speed, cfg.PerFrame),
		LaunchSpeed:  cfg.PerFrame(cfg.Ball.LaunchSpeed),
		LaunchOffset: cfg.Ball.LaunchOffset,
		English:      cfg.Ball.English,

		PaddleY:      cfg.Paddle.Y,
		PaddleHeight: cfg.Paddle.Height,
		PaddleWidth:  tiered(cfg.Paddle.Width, same),
		PaddleSpeed:  cfg.PerFrame(cfg.Paddle.Speed),

		PointerSize: cfg.Pointer.Size,
	}, nil
}

// DefaultTuning is the tuning of the built-in configuration.
func DefaultTuning() Tuning {
	t, err := TuningFromConfig(config.DefaultBreakoutConfig())
	if err != nil {
		panic(err) // built-in defaults are always valid
	}
	return t
}
