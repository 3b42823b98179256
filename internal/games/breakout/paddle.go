package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Paddle is the player's bat. Its width follows the round's tier.
type Paddle struct {
	core.Instance

	Left   bool    // move-left held
	Right  bool    // move-right held
	Launch bool    // launch held
	Delta  float32 // pointer travel to apply on the next Update
}

// NewPaddle creates a paddle at pos. Size is set on the first Update.
func NewPaddle(pos core.Vec2, color core.RGBA) *Paddle {
	return &Paddle{Instance: core.Instance{Position: pos, Color: color}}
}

// TopEdge is the surface the ball bounces off, left to right.
func (p *Paddle) TopEdge() core.Segment {
	return p.Edges()[1]
}

// Resize sets the paddle size for tier.
func (p *Paddle) Resize(t Tuning, tier Difficulty) {
	p.Size = core.V(t.PaddleWidth.At(tier), t.PaddleHeight)
}

// Update resizes the paddle, handles launching, and moves it. It returns
// the newly launched ball, if any. With no ball in play and no lives left
// the round is lost instead.
func (p *Paddle) Update(arena core.Vec2, state *RoundState, ballLive bool, t Tuning) *Ball {
	p.Resize(t, state.Difficulty)

	var spawned *Ball
	switch {
	case ballLive:
	case p.Launch && state.Lives != 0 && state.Status == StatusPlaying:
		spawned = NewBall(
			p.Position.Add(core.V(0, t.LaunchOffset)),
			t.BallSize,
			BallPalette.Playing,
			core.V(0, 1),
			t.LaunchSpeed,
		)
	case state.Lives == 0:
		state.Finish(StatusLost)
	}

	x := p.Position.X()
	if p.Right && x+t.PaddleSpeed < arena.X() {
		x += t.PaddleSpeed
	}
	if p.Left && 0 < x-t.PaddleSpeed {
		x -= t.PaddleSpeed
	}
	x += p.Delta
	p.Delta = 0

	half := p.Size.X() / 2
	p.Position = core.V(core.ClampF32(x, -half, arena.X()+half), p.Position.Y())
	return spawned
}

// ChangeColor shows red while the ball slot is empty and the round is
// still winnable, and the status palette otherwise.
func (p *Paddle) ChangeColor(state RoundState, ballLive bool) {
	if !ballLive && state.Status != StatusLost {
		p.Color = core.Red
		return
	}
	p.Color = PaddlePalette.For(state.Status)
}
