package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Intent is a discrete player input the coordinator understands.
type Intent int

const (
	IntentLeft Intent = iota
	IntentRight
	IntentLaunch
)

// Setup is everything needed to start a round.
type Setup struct {
	Tuning  Tuning
	Grid    GridSpec
	Factory Factory
	Sink    core.AudioSink // nil plays nothing
}

// Frame reports what happened during one Update.
type Frame struct {
	WallBounce   bool
	PaddleBounce bool
	Broke        *Hit
	Escalated    bool
	Missed       bool
	Launched     bool
	Finished     bool // the round left Playing this frame
}

// Entities owns every object of a round and the round state, and runs
// them in a fixed order once per frame.
type Entities struct {
	tuning  Tuning
	state   RoundState
	paddle  *Paddle
	ball    *Ball
	pointer Pointer
	grid    *Grid
	sink    core.AudioSink

	pendingDX float32
}

// NewEntities builds a fresh round.
func NewEntities(setup Setup) (*Entities, error) {
	t := setup.Tuning
	grid, err := NewGrid(setup.Grid, t.Arena, setup.Factory)
	if err != nil {
		return nil, fmt.Errorf("breakout: spawn bricks: %w", err)
	}
	sink := setup.Sink
	if sink == nil {
		sink = core.NopSink{}
	}

	e := &Entities{
		tuning:  t,
		state:   NewRoundState(t.Lives, t.Initial),
		paddle:  NewPaddle(core.V(t.Arena.X()/2, t.PaddleY), core.White),
		pointer: NewPointer(t.PointerSize),
		grid:    grid,
		sink:    sink,
	}
	e.paddle.Resize(t, e.state.Difficulty)
	e.paddle.ChangeColor(e.state, false)
	return e, nil
}

// Press starts holding an intent.
func (e *Entities) Press(i Intent) {
	e.setIntent(i, true)
}

// Release stops holding an intent.
func (e *Entities) Release(i Intent) {
	e.setIntent(i, false)
}

func (e *Entities) setIntent(i Intent, held bool) {
	switch i {
	case IntentLeft:
		e.paddle.Left = held
	case IntentRight:
		e.paddle.Right = held
	case IntentLaunch:
		e.paddle.Launch = held
	}
}

// PointerMotion accumulates horizontal pointer travel in world units. The
// total is applied once on the next Update.
func (e *Entities) PointerMotion(dx float32) {
	e.pendingDX += dx
}

// Update advances the round by one frame.
func (e *Entities) Update() Frame {
	var f Frame
	arena := e.tuning.Arena
	tier := e.state.Difficulty
	wasPlaying := e.state.Status == StatusPlaying

	e.paddle.Delta += e.pendingDX
	e.pendingDX = 0

	if b := e.ball; b != nil {
		if b.ReflectOffEdges(arena) {
			f.WallBounce = true
			e.sink.Play(core.CueWall)
		}
		if b.ReflectOffPaddle(e.paddle, &e.pointer, e.tuning.English) {
			f.PaddleBounce = true
			e.sink.Play(core.CuePaddle)
		}
		if hit, ok := b.ReflectOffBricks(e.grid, &e.state); ok {
			f.Broke = &hit
			e.sink.Play(core.CueBreak)
		}
		b.Move(e.state)
		b.Update(e.state, e.tuning.BallSpeed)
		if b.Despawnable() {
			e.state.LoseLife()
			e.ball = nil
			f.Missed = true
			e.sink.Play(core.CueMiss)
		}
	}
	if e.ball == nil {
		e.pointer.Visible = false
	}

	if e.grid.Count() == 0 {
		e.state.Finish(StatusWon)
	}

	if b := e.paddle.Update(arena, &e.state, e.ball != nil, e.tuning); b != nil {
		e.ball = b
		f.Launched = true
	}
	e.paddle.ChangeColor(e.state, e.ball != nil)

	f.Escalated = e.state.Difficulty != tier
	f.Finished = wasPlaying && e.state.Ended()
	return f
}

// RemainingBricks returns the number of bricks still standing.
func (e *Entities) RemainingBricks() int {
	return e.grid.Count()
}

// State returns a copy of the round state.
func (e *Entities) State() RoundState {
	return e.state
}

// HUD samples the values shown by the text overlay.
func (e *Entities) HUD() HUD {
	return HUD{
		Bricks:     e.grid.Count(),
		Lives:      e.state.Lives,
		Score:      e.state.Score,
		Status:     e.state.Status,
		Difficulty: e.state.Difficulty,
	}
}

// BallLive reports whether a ball is in play.
func (e *Entities) BallLive() bool {
	return e.ball != nil
}

// Drawables lists every visible entity in paint order: paddle, bricks,
// ball, pointer.
func (e *Entities) Drawables() []core.Drawable {
	out := make([]core.Drawable, 0, e.grid.Count()+3)
	out = append(out, e.paddle.Drawable())
	out = e.grid.AppendDrawables(out)
	if e.ball != nil {
		out = append(out, e.ball.Drawable())
	}
	if e.pointer.Visible {
		out = append(out, e.pointer.Drawable())
	}
	return out
}
