package breakout

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// useDefaultConfig points the loader at a copy of the built-in YAML so a
// config in the user's home cannot leak into the test.
func useDefaultConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	if err := os.WriteFile(path, config.GetDefaultYAML("breakout"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

func newGame(t *testing.T, l Layout, sink core.AudioSink) *Game {
	t.Helper()
	useDefaultConfig(t)
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 80, 24
	cfg.Audio = sink
	g := New(l)
	g.Reset(cfg)
	return g
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func pressed(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// script launches at tick 10 and then sweeps the paddle back and forth.
func script(n int) []core.InputFrame {
	frames := make([]core.InputFrame, n)
	for i := range frames {
		switch {
		case i < 10:
			frames[i] = held()
		case i == 10:
			frames[i] = held(core.ActionLaunch)
		case i%40 < 20:
			frames[i] = held(core.ActionRight)
		default:
			frames[i] = held(core.ActionLeft)
		}
	}
	return frames
}

func TestGameDeterminism(t *testing.T) {
	for _, l := range []Layout{Tiered, Striped} {
		t.Run(l.ID, func(t *testing.T) {
			g1 := newGame(t, l, nil)
			g2 := newGame(t, l, nil)

			for i, in := range script(600) {
				g1.Step(in)
				g2.Step(in.Clone())
				s1, s2 := g1.Snapshot(), g2.Snapshot()
				if s1.Hash() != s2.Hash() {
					t.Fatalf("tick %d: hashes differ: %d vs %d", i, s1.Hash(), s2.Hash())
				}
			}
		})
	}
}

func TestGameRegistered(t *testing.T) {
	for _, l := range []Layout{Tiered, Striped} {
		if !registry.Exists(l.ID) {
			t.Errorf("%s not registered", l.ID)
			continue
		}
		g, err := registry.Create(l.ID)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", l.ID, err)
		}
		if g.ID() != l.ID || g.Title() != l.Title {
			t.Errorf("Create(%q) = %s %q", l.ID, g.ID(), g.Title())
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newGame(t, Tiered, nil)
	hud := g.HUD()

	if hud.Bricks != 120 || hud.Lives != 5 || hud.Score != 0 {
		t.Errorf("HUD = %+v", hud)
	}
	if st := g.State(); st.GameOver || st.Paused || st.Score != 0 {
		t.Errorf("State() = %+v", st)
	}
	if g.Snapshot().Tick != 0 {
		t.Error("tick should start at 0")
	}
}

func TestGameDifficultyPreset(t *testing.T) {
	useDefaultConfig(t)
	SetDifficultyPreset("hard")

	g := New(Tiered)
	g.Reset(core.DefaultConfig())
	if g.Difficulty() != Hard {
		t.Errorf("Difficulty() = %v, expected hard", g.Difficulty())
	}
}

func TestGameBadConfigFallsBack(t *testing.T) {
	useDefaultConfig(t)
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))

	g := New(Striped)
	g.Reset(core.DefaultConfig())
	if got := g.HUD().Bricks; got != 72 {
		t.Errorf("bricks = %d, expected the built-in striped layout", got)
	}
}

func TestGamePause(t *testing.T) {
	rec := &core.CueRecorder{}
	g := newGame(t, Tiered, rec)

	g.Step(pressed(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	if !slices.Equal(rec.Cues, []core.Cue{core.CuePause}) {
		t.Errorf("cues = %v, expected [pause]", rec.Cues)
	}

	before := g.Snapshot()
	for range 10 {
		g.Step(held(core.ActionRight, core.ActionLaunch))
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("world changed while paused")
	}

	g.Step(pressed(core.ActionPause))
	if g.State().Paused {
		t.Error("expected resumed")
	}
	if g.Snapshot().Tick != before.Tick+1 {
		t.Errorf("tick = %d, expected %d", g.Snapshot().Tick, before.Tick+1)
	}
}

func TestGameLaunchAndRelease(t *testing.T) {
	g := newGame(t, Tiered, nil)

	g.Step(held(core.ActionLaunch))
	if !g.world.BallLive() {
		t.Fatal("holding launch should spawn a ball")
	}
	if !g.world.paddle.Launch {
		t.Error("launch should stay held")
	}

	g.Step(held())
	if g.world.paddle.Launch {
		t.Error("launch should be released")
	}
}

func TestGamePointerMotion(t *testing.T) {
	g := newGame(t, Tiered, nil)
	start := g.world.paddle.Position.X()

	in := core.NewInputFrame()
	in.PointerDX = 8 // cells; the 80-column screen maps 8 world units per cell
	g.Step(in)

	if got := g.world.paddle.Position.X(); !near(got, start+64) {
		t.Errorf("paddle x = %v, expected %v", got, start+64)
	}
}

func TestGameLossAndRestart(t *testing.T) {
	rec := &core.CueRecorder{}
	g := newGame(t, Tiered, rec)
	g.world.state.Lives = 0

	g.Step(held())
	if !g.State().GameOver || g.HUD().Status != StatusLost {
		t.Fatalf("State() = %+v, expected game over", g.State())
	}

	// Pausing a finished round is ignored.
	g.Step(pressed(core.ActionPause))
	if g.State().Paused || slices.Contains(rec.Cues, core.CuePause) {
		t.Error("finished round was paused")
	}

	g.Step(pressed(core.ActionRestart))
	if g.State().GameOver || g.HUD().Lives != 5 {
		t.Errorf("after restart: %+v", g.HUD())
	}
}

func TestGameRestartIgnoredWhilePlaying(t *testing.T) {
	g := newGame(t, Tiered, nil)
	g.Step(held(core.ActionLaunch))

	g.Step(pressed(core.ActionRestart))
	if !g.world.BallLive() {
		t.Error("restart reset a round in progress")
	}
}

func TestGameRender(t *testing.T) {
	g := newGame(t, Tiered, nil)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	hud := scr.Row(0)
	for _, want := range []string{"Score: 0", "Lives: 5", "Bricks: 120", "easy"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD row %q missing %q", hud, want)
		}
	}
	if !strings.Contains(scr.Row(23), "Press SPACE to launch") {
		t.Errorf("bottom row = %q", scr.Row(23))
	}
	if !strings.ContainsRune(scr.String(), BrickChar) {
		t.Error("no bricks drawn")
	}
	if !strings.ContainsRune(scr.String(), PaddleChar) {
		t.Error("no paddle drawn")
	}
}

func TestGameRenderOverlays(t *testing.T) {
	g := newGame(t, Tiered, nil)
	scr := core.NewScreen(80, 24)

	g.Step(pressed(core.ActionPause))
	g.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}

	g.Step(pressed(core.ActionPause))
	g.world.state.Lives = 0
	g.Step(held())
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newGame(t, Tiered, nil)
	scr := core.NewScreen(20, 8)
	g.Render(scr)

	if !strings.Contains(scr.String(), "Window too small") {
		t.Errorf("screen = %q", scr.String())
	}
}

func TestGameRuntimeDifficulty(t *testing.T) {
	useDefaultConfig(t)
	SetDifficultyPreset("hard")

	cfg := core.DefaultConfig()
	cfg.Difficulty = "normal"
	g := New(Tiered)
	g.Reset(cfg)
	if g.Difficulty() != Normal {
		t.Errorf("Difficulty() = %v, expected the per-run preset", g.Difficulty())
	}
}

func TestGameResizeScalesPointer(t *testing.T) {
	g := newGame(t, Tiered, nil)
	g.Resize(160, 48)
	start := g.world.paddle.Position.X()

	in := core.NewInputFrame()
	in.PointerDX = 8
	g.Step(in)

	if got := g.world.paddle.Position.X(); !near(got, start+32) {
		t.Errorf("paddle x = %v, expected %v", got, start+32)
	}
}

func TestGameSummary(t *testing.T) {
	g := newGame(t, Striped, nil)
	g.world.state.Lives = 0
	g.Step(held())

	sum := g.Summary()
	want := registry.Summary{Score: 0, Difficulty: "easy", Status: "lost", BricksLeft: 72, Ticks: 1}
	if sum != want {
		t.Errorf("Summary() = %+v, expected %+v", sum, want)
	}
}

var (
	_ registry.Resizer    = (*Game)(nil)
	_ registry.Summarizer = (*Game)(nil)
)
