package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Snapshot is a copy of everything visible about a round at one tick.
type Snapshot struct {
	Tick      uint64
	HUD       HUD
	Paused    bool
	BallLive  bool
	Drawables []core.Drawable
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{Tick: g.tick, Paused: g.paused}
	}
	return Snapshot{
		Tick:      g.tick,
		HUD:       g.world.HUD(),
		Paused:    g.paused,
		BallLive:  g.world.BallLive(),
		Drawables: g.world.Drawables(),
	}
}

// Hash folds the snapshot into a single value for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.HUD.Bricks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HUD.Lives)
	h = h*31 + snap.HUD.Score
	h = h*31 + uint64(snap.HUD.Status)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HUD.Difficulty) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}
	if snap.BallLive {
		h = h*31 + 2
	}

	mix := func(v float32) {
		h = h*31 + uint64(math.Float32bits(v))
	}
	for _, d := range snap.Drawables {
		mix(d.Position.X())
		mix(d.Position.Y())
		mix(d.HalfExtent.X())
		mix(d.HalfExtent.Y())
		for _, c := range d.Color {
			mix(c)
		}
	}
	return h
}
