package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const (
	scoreboardRows = 20
	chromeRows     = 10 // title, tabs, borders, last-run line, help
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevLayout key.Binding
	NextLayout key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevLayout, k.NextLayout, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevLayout: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev layout")),
		NextLayout: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "next layout")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs per layout. When lastRun names a
// stored run, that run is marked in the table and summarized below it.
type ScoreboardModel struct {
	layouts  []registry.GameInfo
	cursor   int
	store    *storage.Store
	runs     []storage.Run
	last     *storage.Run
	lastRun  string
	tickRate int

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	goingBack bool
	quitting  bool
}

// NewScoreboardModel creates a scoreboard sized from cfg. It opens on the
// layout of lastRun when that run exists.
func NewScoreboardModel(store *storage.Store, cfg core.RuntimeConfig, lastRun string) ScoreboardModel {
	m := ScoreboardModel{
		layouts:  registry.List(),
		store:    store,
		lastRun:  lastRun,
		tickRate: cfg.TickRate,
		help:     help.New(),
		keys:     DefaultScoreboardKeyMap(),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	if m.tickRate <= 0 {
		m.tickRate = 60
	}

	if store != nil && lastRun != "" {
		if run, err := store.RunByID(lastRun); err == nil && run != nil {
			m.last = run
			for i, l := range m.layouts {
				if l.ID == run.GameID {
					m.cursor = i
				}
			}
		}
	}

	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Tier", Width: 7},
			{Title: "Result", Width: 9},
			{Title: "Time", Width: 6},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, min(scoreboardRows, m.height-chromeRows))),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load fetches the runs of the selected layout and rebuilds the rows.
func (m *ScoreboardModel) load() {
	m.runs = nil
	if m.store != nil && len(m.layouts) > 0 {
		runs, err := m.store.TopScores(m.layouts[m.cursor].ID, scoreboardRows)
		if err == nil {
			m.runs = runs
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rank := fmt.Sprintf("%d", i+1)
		if r.RunID == m.lastRun {
			rank = "*" + rank
		}
		rows[i] = table.Row{
			rank,
			fmt.Sprintf("%d", r.Score),
			r.Difficulty,
			resultLabel(r),
			playTime(r.Ticks, m.tickRate),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func resultLabel(r storage.Run) string {
	if r.Status == "won" {
		return "clear"
	}
	return fmt.Sprintf("%d left", r.BricksLeft)
}

// playTime renders a tick count as m:ss.
func playTime(ticks int64, tickRate int) string {
	d := time.Duration(ticks) * time.Second / time.Duration(tickRate)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextLayout):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevLayout):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(3, min(scoreboardRows, m.height-chromeRows)))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) step(d int) {
	if n := len(m.layouts); n > 0 {
		m.cursor = (m.cursor + d + n) % n
		m.load()
	}
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	active := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	boxed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(centerText(title.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.layouts))
	for i, l := range m.layouts {
		if i == m.cursor {
			tabs[i] = active.Render(l.Title)
		} else {
			tabs[i] = dim.Render(" " + l.Title + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	if len(m.runs) == 0 {
		body = dim.Italic(true).Padding(1, 4).Render("No runs recorded yet.")
	}
	b.WriteString(centerText(boxed.Render(body), m.width))
	b.WriteString("\n")

	if m.last != nil {
		line := fmt.Sprintf("Last run: %d points, %s on %s in %s",
			m.last.Score, resultLabel(*m.last), m.last.Difficulty, playTime(m.last.Ticks, m.tickRate))
		b.WriteString(centerText(dim.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))
	return b.String()
}

// Layout returns the ID of the layout being shown.
func (m ScoreboardModel) Layout() string {
	if len(m.layouts) == 0 {
		return ""
	}
	return m.layouts[m.cursor].ID
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen. It reports whether the player
// went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, cfg core.RuntimeConfig, lastRun string) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, cfg, lastRun), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
