package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Status is the lifecycle phase of a round.
type Status int

const (
	StatusPlaying Status = iota
	StatusLost
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Difficulty is one of the three tiers. Higher tiers are faster and use a
// narrower paddle.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a tier name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "easy":
		return Easy, true
	case "normal":
		return Normal, true
	case "hard":
		return Hard, true
	default:
		return Easy, false
	}
}

// RoundState is the mutable state of one round. The Entities coordinator is
// its only owner; everything else reads it through HUD snapshots.
type RoundState struct {
	Lives      uint32
	Status     Status
	Score      uint64
	Difficulty Difficulty
}

// NewRoundState starts a round in the Playing status.
func NewRoundState(lives uint32, tier Difficulty) RoundState {
	return RoundState{Lives: lives, Status: StatusPlaying, Difficulty: tier}
}

// Finish moves a playing round to a terminal status. Once a round has left
// Playing it stays where it is.
func (s *RoundState) Finish(to Status) bool {
	if s.Status != StatusPlaying || to == StatusPlaying {
		return false
	}
	s.Status = to
	return true
}

// AddScore credits points.
func (s *RoundState) AddScore(points uint64) {
	s.Score += points
}

// Escalate raises the tier to at least to. It never lowers it.
func (s *RoundState) Escalate(to Difficulty) bool {
	if to <= s.Difficulty {
		return false
	}
	s.Difficulty = to
	return true
}

// LoseLife takes one life, stopping at zero.
func (s *RoundState) LoseLife() {
	if s.Lives > 0 {
		s.Lives--
	}
}

// Ended reports whether the round is Won or Lost.
func (s RoundState) Ended() bool {
	return s.Status != StatusPlaying
}

// Palette is an entity's color for each round status. All status-driven
// coloring goes through Palette.For.
type Palette struct {
	Playing core.RGBA
	Lost    core.RGBA
	Won     core.RGBA
}

// For returns the color for status.
func (p Palette) For(status Status) core.RGBA {
	switch status {
	case StatusLost:
		return p.Lost
	case StatusWon:
		return p.Won
	default:
		return p.Playing
	}
}

// Entity palettes. Terminal states fade everything out with a zero alpha.
var (
	BallPalette = Palette{
		Playing: core.White,
		Lost:    core.RGBA{1, 0, 0, 0},
		Won:     core.Transparent,
	}
	PaddlePalette = Palette{
		Playing: core.White,
		Lost:    core.Transparent,
		Won:     core.RGBA{0, 0, 1, 0},
	}
)

// HUD is the read-only view of a round sampled once per frame.
type HUD struct {
	Bricks     int
	Lives      uint32
	Score      uint64
	Status     Status
	Difficulty Difficulty
}
