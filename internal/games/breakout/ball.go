package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Ball is the single ball in play.
type Ball struct {
	core.Instance
	Direction core.Vec2 // renormalized on every Move
	Speed     float32   // units per frame
}

// NewBall creates a ball of the given diameter.
func NewBall(pos core.Vec2, size float32, color core.RGBA, dir core.Vec2, speed float32) *Ball {
	return &Ball{
		Instance: core.Instance{
			Position: pos,
			Size:     core.V(size, size),
			Color:    color,
		},
		Direction: dir,
		Speed:     speed,
	}
}

// Path is the segment the ball will travel during the next Move.
func (b *Ball) Path() core.Segment {
	step := core.Normalize(b.Direction).Mul(b.Speed)
	return core.Segment{A: b.Position, B: b.Position.Add(step)}
}

// Update sets the speed for the current tier and the color for the
// current status.
func (b *Ball) Update(state RoundState, speeds PerTier[float32]) {
	b.Speed = speeds.At(state.Difficulty)
	b.Color = BallPalette.For(state.Status)
}

// Move advances the ball one frame. The ball only moves while the round is
// being played.
func (b *Ball) Move(state RoundState) {
	if state.Status != StatusPlaying {
		return
	}
	b.Direction = core.Normalize(b.Direction)
	b.Position = b.Position.Add(b.Direction.Mul(b.Speed))
}

// ReflectOffEdges bounces the ball off the left, right and top walls. The
// bottom is open. When two walls are crossed at once their normals are
// summed. A wall only counts while the ball is still heading into it.
func (b *Ball) ReflectOffEdges(arena core.Vec2) bool {
	x, y := b.Position.X(), b.Position.Y()
	dx, dy := b.Direction.X(), b.Direction.Y()

	var n core.Vec2
	if x >= arena.X() && dx > 0 {
		n = n.Add(core.V(-1, 0))
	}
	if x <= 0 && dx < 0 {
		n = n.Add(core.V(1, 0))
	}
	if y >= arena.Y() && dy > 0 {
		n = n.Add(core.V(0, -1))
	}
	if n == (core.Vec2{}) {
		return false
	}
	b.Direction = core.Reflect(b.Direction, n)
	return true
}

// ReflectOffPaddle projects the ball path onto the paddle's top edge,
// placing the pointer where it lands, and bounces the ball when the path
// reaches the edge this frame. The bounce angle is skewed by how far from
// the paddle center the ball lands, scaled by english.
func (b *Ball) ReflectOffPaddle(p *Paddle, pointer *Pointer, english float32) bool {
	path := b.Path()
	edge := p.TopEdge()

	r, s, ok := core.SegmentIntersect(path.A, path.B, edge.A, edge.B)
	pointer.Visible = ok && core.InUnit(s) && r >= 0
	if !pointer.Visible {
		return false
	}
	contact := path.A.Add(path.B.Sub(path.A).Mul(r))
	pointer.Position = contact

	if !core.InUnit(r) {
		return false
	}
	above := path.A.Y() >= edge.A.Y()
	dy := b.Direction.Y()
	if (above && dy >= 0) || (!above && dy <= 0) {
		// Already leaving the paddle.
		return false
	}

	ny := float32(1)
	if !above {
		ny = -1
	}
	b.Position = contact
	b.Direction = core.Normalize(core.V((s-0.5)*english, ny))
	return true
}

// ReflectOffBricks breaks the first brick on the ball's path and bounces
// off the face it crossed.
func (b *Ball) ReflectOffBricks(g *Grid, state *RoundState) (Hit, bool) {
	hit, ok := g.Collide(b.Path(), state)
	if ok {
		b.Direction = core.Reflect(b.Direction, hit.Face.Normal())
	}
	return hit, ok
}

// Despawnable reports whether the ball has dropped below the arena.
func (b *Ball) Despawnable() bool {
	return b.Position.Y() < 0
}
