// Package breakout implements the Breakout simulation and its adapter to the
// arcade registry.
package breakout

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar  = '▀'
	BrickChar   = '█'
	BallChar    = '●'
	PointerChar = '▼'
	BorderHoriz = '─'
)

// Rows above the playfield: HUD text and a separator.
const hudRows = 2

// Smallest terminal the game will draw into.
const (
	minScreenW = 30
	minScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// intentFor maps held platform actions to coordinator intents.
var intentFor = map[core.Action]Intent{
	core.ActionLeft:   IntentLeft,
	core.ActionRight:  IntentRight,
	core.ActionLaunch: IntentLaunch,
}

// Game adapts Entities to the registry.Game interface: it owns pausing,
// restarting, input translation and terminal rendering.
type Game struct {
	layout  Layout
	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
	log     *log.Logger
	sink    core.AudioSink

	world  *Entities
	held   map[core.Action]bool
	paused bool
	tick   uint64
}

// New creates a game using layout l.
func New(l Layout) *Game {
	return &Game{layout: l}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.layout.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.layout.Title
}

// Reset starts a new round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = runtime.Log().WithPrefix(g.layout.ID)
	g.sink = runtime.Sink()

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		g.log.Warn("using built-in config", "path", configPath, "err", err)
		cfg = config.DefaultBreakoutConfig()
	}
	preset := difficultyPreset
	if p := config.ParsePreset(runtime.Difficulty); p != "" {
		preset = p
	}
	if preset != "" {
		config.ApplyBreakoutPreset(&cfg, preset)
	}

	world, err := g.build(cfg)
	if err != nil {
		g.log.Error("invalid layout, using built-in config", "err", err)
		cfg = config.DefaultBreakoutConfig()
		world, err = g.build(cfg)
		if err != nil {
			panic(fmt.Sprintf("breakout: built-in config rejected: %v", err))
		}
	}

	g.cfg = cfg
	g.world = world
	g.held = make(map[core.Action]bool)
	g.paused = false
	g.tick = 0

	hud := world.HUD()
	g.log.Info("round started", "bricks", hud.Bricks, "lives", hud.Lives, "tier", hud.Difficulty)
}

func (g *Game) build(cfg config.BreakoutConfig) (*Entities, error) {
	setup, err := NewSetup(g.layout, cfg, g.sink)
	if err != nil {
		return nil, err
	}
	return NewEntities(setup)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	ended := g.world.State().Ended()

	if in.Has(core.ActionRestart) && ended {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !ended {
		g.paused = !g.paused
		g.sink.Play(core.CuePause)
		g.log.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)
	g.tick++
	g.report(g.world.Update())

	return core.StepResult{State: g.State()}
}

// applyInput turns the held set into press and release edges and forwards
// pointer travel in world units.
func (g *Game) applyInput(in core.InputFrame) {
	for action, intent := range intentFor {
		now := in.Holding(action)
		if now == g.held[action] {
			continue
		}
		g.held[action] = now
		if now {
			g.world.Press(intent)
		} else {
			g.world.Release(intent)
		}
	}

	if in.PointerDX != 0 {
		if v := g.viewport(g.runtime.ScreenW, g.runtime.ScreenH); v.w > 0 {
			g.world.PointerMotion(in.PointerDX * g.cfg.Arena.Width / float32(v.w))
		}
	}
}

func (g *Game) report(f Frame) {
	hud := g.world.HUD()
	if f.Broke != nil {
		g.log.Debug("brick broken",
			"row", f.Broke.Cell.Row, "col", f.Broke.Cell.Col,
			"face", f.Broke.Face, "kind", f.Broke.Brick.Kind, "score", hud.Score)
	}
	if f.Escalated {
		g.log.Info("difficulty raised", "tier", hud.Difficulty)
	}
	if f.Missed {
		g.log.Info("ball lost", "lives", hud.Lives)
	}
	if f.Finished {
		g.log.Info("round over", "status", hud.Status, "score", hud.Score, "bricks", hud.Bricks, "ticks", g.tick)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	hud := g.world.HUD()
	return core.GameState{
		Score:    int(min(hud.Score, math.MaxInt32)), //#nosec G115 -- clamped above
		GameOver: hud.Status != StatusPlaying,
		Paused:   g.paused,
	}
}

// Resize records a new terminal size so pointer travel keeps its scale.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
}

// Summary reports the round for score storage.
func (g *Game) Summary() registry.Summary {
	hud := g.world.HUD()
	return registry.Summary{
		Score:      int64(min(hud.Score, math.MaxInt64)), //#nosec G115 -- clamped above
		Difficulty: hud.Difficulty.String(),
		Status:     hud.Status.String(),
		BricksLeft: hud.Bricks,
		Ticks:      int64(min(g.tick, math.MaxInt64)), //#nosec G115 -- clamped above
	}
}

// HUD returns the values shown by the overlay.
func (g *Game) HUD() HUD {
	return g.world.HUD()
}

// Difficulty returns the current tier.
func (g *Game) Difficulty() Difficulty {
	return g.world.State().Difficulty
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	hud := g.world.HUD()
	g.renderHUD(dst, hud)
	g.renderWorld(dst)
	g.renderOverlay(dst, hud)
}

func (g *Game) renderHUD(dst *core.Screen, hud HUD) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", hud.Score))

	lives := fmt.Sprintf("Lives: %d", hud.Lives)
	if hud.Lives == 0 {
		lives = "GAME OVER"
	}
	dst.DrawTextCentered(0, lives)

	right := fmt.Sprintf("Bricks: %d  %s", hud.Bricks, hud.Difficulty)
	if hud.Status == StatusWon {
		right = "CLEAR  " + hud.Difficulty.String()
	}
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	for x := range dst.Width() {
		dst.Set(x, 1, BorderHoriz)
	}
}

// viewport is the playfield area of the screen, in cells.
type viewport struct {
	x0, y0, w, h int
	arena        core.Vec2
}

func (g *Game) viewport(screenW, screenH int) viewport {
	return viewport{
		x0:    0,
		y0:    hudRows,
		w:     screenW,
		h:     screenH - hudRows,
		arena: core.V(g.cfg.Arena.Width, g.cfg.Arena.Height),
	}
}

func (v viewport) col(x float32) int {
	return v.x0 + int(math.Floor(float64(x/v.arena.X()*float32(v.w))))
}

// row flips world y (up) into screen rows (down).
func (v viewport) row(y float32) int {
	return v.y0 + v.h - 1 - int(math.Floor(float64(y/v.arena.Y()*float32(v.h))))
}

func (v viewport) fill(dst *core.Screen, d core.Drawable, glyph rune) {
	lo := d.Position.Sub(d.HalfExtent)
	hi := d.Position.Add(d.HalfExtent)
	c0, c1 := v.col(lo.X()), v.col(hi.X())
	r0, r1 := v.row(hi.Y()), v.row(lo.Y())
	color := d.Color.Nearest()
	for y := max(r0, v.y0); y <= min(r1, v.y0+v.h-1); y++ {
		for x := max(c0, v.x0); x <= min(c1, v.x0+v.w-1); x++ {
			dst.SetColored(x, y, glyph, color)
		}
	}
}

// renderWorld rasterizes the drawables. Their order is fixed (paddle,
// bricks, ball, pointer), which is how glyphs are chosen.
func (g *Game) renderWorld(dst *core.Screen) {
	v := g.viewport(dst.Width(), dst.Height())
	hud := g.world.HUD()
	ballAt := 1 + hud.Bricks

	for i, d := range g.world.Drawables() {
		if !d.Color.Visible() {
			continue
		}
		glyph := BrickChar
		switch {
		case i == 0:
			glyph = PaddleChar
		case i == ballAt && g.world.BallLive():
			glyph = BallChar
		case i >= ballAt:
			glyph = PointerChar
		}
		v.fill(dst, d, glyph)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, hud HUD) {
	switch {
	case hud.Status == StatusLost:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", hud.Score))
	case hud.Status == StatusWon:
		g.drawCenteredBox(dst, "CLEAR!", fmt.Sprintf("Final Score: %d  |  Press R to restart", hud.Score))
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case !g.world.BallLive() && hud.Lives > 0:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register the layouts with the registry
func init() {
	for _, l := range []Layout{Tiered, Striped} {
		registry.Register(l.ID, func() registry.Game {
			return New(l)
		})
	}
}
