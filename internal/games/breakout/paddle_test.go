package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestPaddleMovement(t *testing.T) {
	tun := DefaultTuning()
	step := tun.PaddleSpeed

	tests := []struct {
		name  string
		x     float32
		left  bool
		right bool
		delta float32
		want  float32
	}{
		{"idle", 320, false, false, 0, 320},
		{"right", 320, false, true, 0, 320 + step},
		{"left", 320, true, false, 0, 320 - step},
		{"both cancel", 320, true, true, 0, 320},
		{"left stops at the wall", 3, true, false, 0, 3},
		{"right stops at the wall", 637, false, true, 0, 637},
		{"pointer delta", 320, false, false, 12.5, 332.5},
		{"delta clamps right", 320, false, false, 1000, 640 + 32},
		{"delta clamps left", 320, false, false, -1000, -32},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(core.V(tc.x, tun.PaddleY), core.White)
			p.Left, p.Right, p.Delta = tc.left, tc.right, tc.delta
			s := NewRoundState(3, Easy)

			p.Update(tun.Arena, &s, true, tun)
			if !near(p.Position.X(), tc.want) {
				t.Errorf("x = %v, expected %v", p.Position.X(), tc.want)
			}
			if p.Position.Y() != tun.PaddleY {
				t.Errorf("y = %v, expected %v", p.Position.Y(), tun.PaddleY)
			}
			if p.Delta != 0 {
				t.Errorf("Delta = %v after Update, expected 0", p.Delta)
			}
		})
	}
}

func TestPaddleResize(t *testing.T) {
	tun := DefaultTuning()
	p := NewPaddle(core.V(320, tun.PaddleY), core.White)

	for tier, want := range map[Difficulty]float32{Easy: 64, Normal: 48, Hard: 32} {
		s := NewRoundState(3, tier)
		p.Update(tun.Arena, &s, true, tun)
		if p.Size != core.V(want, tun.PaddleHeight) {
			t.Errorf("%v: size = %v, expected (%v, %v)", tier, p.Size, want, tun.PaddleHeight)
		}
	}
}

func TestPaddleLaunch(t *testing.T) {
	tun := DefaultTuning()

	tests := []struct {
		name     string
		state    RoundState
		ballLive bool
		launch   bool
		spawn    bool
		status   Status
	}{
		{"launch", NewRoundState(3, Easy), false, true, true, StatusPlaying},
		{"not held", NewRoundState(3, Easy), false, false, false, StatusPlaying},
		{"ball already live", NewRoundState(3, Easy), true, true, false, StatusPlaying},
		{"no lives left", NewRoundState(0, Easy), false, true, false, StatusLost},
		{"no lives, not held", NewRoundState(0, Easy), false, false, false, StatusLost},
		{"round already won", RoundState{Lives: 3, Status: StatusWon}, false, true, false, StatusWon},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(core.V(320, tun.PaddleY), core.White)
			p.Launch = tc.launch
			s := tc.state

			b := p.Update(tun.Arena, &s, tc.ballLive, tun)
			if (b != nil) != tc.spawn {
				t.Fatalf("spawned = %v, expected %v", b != nil, tc.spawn)
			}
			if s.Status != tc.status {
				t.Errorf("status = %v, expected %v", s.Status, tc.status)
			}
			if b == nil {
				return
			}
			if !nearVec(b.Position, core.V(320, tun.PaddleY+tun.LaunchOffset)) {
				t.Errorf("ball at %v", b.Position)
			}
			if b.Direction != core.V(0, 1) {
				t.Errorf("ball direction = %v, expected (0, 1)", b.Direction)
			}
			if b.Speed != tun.LaunchSpeed {
				t.Errorf("ball speed = %v, expected %v", b.Speed, tun.LaunchSpeed)
			}
		})
	}
}

func TestPaddleChangeColor(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		ballLive bool
		want     core.RGBA
	}{
		{"waiting for launch", StatusPlaying, false, core.Red},
		{"ball in play", StatusPlaying, true, PaddlePalette.Playing},
		{"lost", StatusLost, false, PaddlePalette.Lost},
		{"won with no ball", StatusWon, false, core.Red},
		{"won with ball", StatusWon, true, PaddlePalette.Won},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(core.V(0, 0), core.White)
			p.ChangeColor(RoundState{Status: tc.status}, tc.ballLive)
			if p.Color != tc.want {
				t.Errorf("color = %v, expected %v", p.Color, tc.want)
			}
		})
	}
}
