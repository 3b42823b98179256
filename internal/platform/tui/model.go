package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Model is the Bubble Tea model for one game session. It owns the tick
// loop, turns key and mouse events into input frames and saves each
// finished round once.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   GameKeyMap
	latch  *holdLatch
	now    func() time.Time
	log    *log.Logger

	input     core.InputFrame
	gameState core.GameState
	runID     string
	saved     bool // current run already stored
	lastSaved string
	mouseX    int  // last pointer column, -1 before the first motion event

	quitOnBack bool
	backToMenu bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. With
// quitOnBack set, the back key also ends the program.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, quitOnBack bool) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		latch:      newHoldLatch(),
		now:        time.Now,
		log:        cfg.Log().WithPrefix("tui"),
		input:      core.NewInputFrame(),
		runID:      storage.NewRunID(),
		mouseX:     -1,
		quitOnBack: quitOnBack,
	}
}

// Init starts the first round and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Back):
		if !m.gameState.GameOver && !m.gameState.Paused {
			break
		}
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Left):
		m.latch.release(core.ActionRight)
		m.latch.press(core.ActionLeft, now)

	case key.Matches(msg, m.keys.Right):
		m.latch.release(core.ActionLeft)
		m.latch.press(core.ActionRight, now)

	case key.Matches(msg, m.keys.Launch):
		m.latch.press(core.ActionLaunch, now)

	case key.Matches(msg, m.keys.Pause):
		m.input.Set(core.ActionPause)
		m.latch.releaseAll()

	case key.Matches(msg, m.keys.Restart):
		m.input.Set(core.ActionRestart)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion {
		return m, nil
	}
	if m.mouseX >= 0 {
		m.input.PointerDX += float32(msg.X - m.mouseX)
	}
	m.mouseX = msg.X
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	restarting := m.gameState.GameOver && m.input.Has(core.ActionRestart)

	m.latch.apply(&m.input, m.now())
	result := m.game.Step(m.input)
	m.gameState = result.State

	if restarting && !m.gameState.GameOver {
		m.runID = storage.NewRunID()
		m.saved = false
		m.log.Debug("new run", "run", m.runID)
	}
	if m.gameState.GameOver && !m.saved {
		if m.saveRun() {
			m.lastSaved = m.runID
		}
		m.saved = true
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished round. Failures are logged and otherwise
// ignored; the game carries on.
func (m Model) saveRun() bool {
	if m.store == nil {
		return false
	}
	run := storage.Run{
		RunID:  m.runID,
		GameID: m.game.ID(),
		Score:  int64(m.gameState.Score),
	}
	if s, ok := m.game.(registry.Summarizer); ok {
		sum := s.Summary()
		run.Score = sum.Score
		run.Difficulty = sum.Difficulty
		run.Status = sum.Status
		run.BricksLeft = sum.BricksLeft
		run.Ticks = sum.Ticks
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.log.Error("could not save run", "run", m.runID, "err", err)
		return false
	}
	m.log.Info("run saved", "run", m.runID, "game", run.GameID, "score", run.Score)
	return true
}

// saveScreenshot writes the current screen to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// RunID returns the identifier of the current run.
func (m Model) RunID() string {
	return m.runID
}

// LastSaved returns the run ID of the most recently stored run, or "".
func (m Model) LastSaved() string {
	return m.lastSaved
}

// RunResult is how a local game ended.
type RunResult struct {
	LastRun string // ID of the last stored run, "" when none was stored
	Quit    bool   // the player quit rather than going back
}

// Run plays game in the local terminal until the player quits or goes
// back.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (RunResult, error) {
	p := tea.NewProgram(
		NewModel(game, store, cfg, true),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return RunResult{Quit: true}, err
	}
	m, ok := final.(Model)
	if !ok {
		return RunResult{Quit: true}, nil
	}
	return RunResult{LastRun: m.LastSaved(), Quit: m.IsQuitting()}, nil
}
