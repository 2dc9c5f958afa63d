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

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Scoreboard layout constants
const (
	maxRuns        = 100 // Max runs to load per view
	tableMinHeight = 3
)

// RunSource is the read side of the run history.
type RunSource interface {
	TopRuns(limit int) ([]storage.Run, error)
	RecentRuns(limit int) ([]storage.Run, error)
	Stats() (*storage.Stats, error)
}

// boardView selects which runs the table lists.
type boardView int

const (
	viewTop boardView = iota
	viewRecent
)

func (v boardView) String() string {
	if v == viewRecent {
		return "RECENT RUNS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	SwitchView key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SwitchView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.SwitchView, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "top/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	source   RunSource
	view     boardView
	runs     []storage.Run
	stats    *storage.Stats
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model. A nil source shows an
// empty board.
func NewScoreboardModel(source RunSource, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Result", Width: 8},
		{Title: "Time", Width: 7},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, tableMinHeight)), // Header, stats, help and borders
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

// load fetches runs for the current view and the aggregate stats.
func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.source == nil {
		m.updateTableRows()
		return
	}

	var runs []storage.Run
	var err error
	switch m.view {
	case viewRecent:
		runs, err = m.source.RecentRuns(maxRuns)
	default:
		runs, err = m.source.TopRuns(maxRuns)
	}
	if err != nil {
		m.err = err
	} else {
		m.runs = runs
	}

	if stats, err := m.source.Stats(); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = runRow(i+1, r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func runRow(rank int, r storage.Run) table.Row {
	result := "defeat"
	if r.Victory {
		result = "VICTORY"
	}
	player := r.Player
	if player == "" {
		player = "local"
	}
	return table.Row{
		fmt.Sprintf("#%d", rank),
		fmt.Sprintf("%d", r.Score),
		fmt.Sprintf("%d", r.Level),
		result,
		formatDuration(r.Duration),
		player,
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.SwitchView):
			m.view = 1 - m.view
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("SPACE INVADERS - "+m.view.String(), m.width)))
	b.WriteString("\n\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(hudLabelStyle.Render(line), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs   %d victories   best %d   avg %.0f   furthest level %d",
		m.stats.Runs, m.stats.Victories, m.stats.HighScore, m.stats.AvgScore, m.stats.MaxLevel)
}

// renderTableContent renders the table or a placeholder message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Could not load runs:\n" + m.err.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(source RunSource, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
