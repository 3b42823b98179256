package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// GameKeyMap holds the in-game bindings.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Launch     key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right/d", "move right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "launch"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MenuKeyMap holds the layout picker bindings.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevPreset key.Binding
	NextPreset key.Binding
	Select     key.Binding
	Scores     key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPreset, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPreset, k.NextPreset},
		{k.Select, k.Scores, k.Quit},
	}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		PrevPreset: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/h", "easier"),
		),
		NextPreset: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("left/right", "difficulty"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Terminals report key presses and auto-repeats but never releases, so a
// held key is inferred: it stays down until its repeats stop arriving.
const (
	firstRepeatHold = 500 * time.Millisecond // covers the typical auto-repeat delay
	repeatHold      = 120 * time.Millisecond
)

// holdLatch turns press events into held actions.
type holdLatch struct {
	until map[core.Action]time.Time
}

func newHoldLatch() *holdLatch {
	return &holdLatch{until: make(map[core.Action]time.Time)}
}

// press records a press or auto-repeat of a at now.
func (l *holdLatch) press(a core.Action, now time.Time) {
	hold := firstRepeatHold
	if deadline, ok := l.until[a]; ok && !now.After(deadline) {
		hold = repeatHold
	}
	l.until[a] = now.Add(hold)
}

// release drops a immediately.
func (l *holdLatch) release(a core.Action) {
	delete(l.until, a)
}

// releaseAll drops every held action.
func (l *holdLatch) releaseAll() {
	clear(l.until)
}

// apply marks every action still held at now on frame and forgets the
// ones that expired.
func (l *holdLatch) apply(frame *core.InputFrame, now time.Time) {
	for a, deadline := range l.until {
		if now.After(deadline) {
			delete(l.until, a)
			continue
		}
		frame.Hold(a)
	}
}
