package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/session"
)

// keyHoldTimeout is how long a key counts as held after its last event.
// Terminals report no key releases, only presses and auto-repeats, and the
// first repeat usually arrives 300 to 500ms after the press.
const keyHoldTimeout = 550 * time.Millisecond

// Model is the Bubble Tea model hosting one invaders session.
type Model struct {
	session  *session.Session
	keys     KeyMap
	help     help.Model
	fps      int
	width    int
	height   int
	held     map[string]time.Time
	quitting bool
}

// NewModel creates a model for sess drawing at fps frames per second.
func NewModel(sess *session.Session, fps int) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		session: sess,
		keys:    DefaultKeyMap(),
		help:    h,
		fps:     fps,
		held:    make(map[string]time.Time),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.session.Start(time.Now())
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.session.Stop()
		return m, tea.Quit
	}

	if m.keys.isGameKey(msg) {
		k := strings.ToLower(msg.String())
		m.session.Press(k)
		m.held[k] = now
		return m, nil
	}

	game := m.session.Game()
	switch {
	case key.Matches(msg, m.keys.Start):
		switch game.State() {
		case invaders.StateMenu:
			m.session.StartGame()
		case invaders.StateLevelComplete:
			m.session.NextLevel()
		case invaders.StateGameOver:
			m.session.Restart()
		}
	case key.Matches(msg, m.keys.Restart):
		if game.State() == invaders.StateGameOver {
			m.session.Restart()
		}
	case key.Matches(msg, m.keys.Menu):
		switch game.State() {
		case invaders.StatePaused, invaders.StateGameOver:
			m.session.Menu()
		}
	case key.Matches(msg, m.keys.AutoShoot):
		m.session.SetAutoShoot(!game.AutoShoot())
	case key.Matches(msg, m.keys.Snapshot):
		m.saveScreenshot(now)
	case msg.String() == "?":
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleMouse moves the player to the pointer column and fires while the
// left button is down. X10 mouse mode reports releases without a button, so
// any release stops firing.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease {
		m.session.Input().SetInput(core.IntentPatch{Shoot: core.Bool(false)})
	}
	if m.session.Game().State() != invaders.StatePlaying {
		return m, nil
	}
	if msg.Y < m.session.Screen().Height() {
		m.session.SetPlayerPosition(m.session.Canvas().CellCenterX(msg.X))
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.session.Input().SetInput(core.IntentPatch{Shoot: core.Bool(true)})
	}
	return m, nil
}

// handleResize gives the playfield everything but the HUD rows.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.session.Resize(msg.Width, max(msg.Height-hudLines, 1))
	return m, nil
}

// handleTick releases keys that stopped repeating and advances the session.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.releaseStale(now)
	m.session.Frame(now)
	return m, tickCmd(m.fps)
}

func (m Model) releaseStale(now time.Time) {
	for k, seen := range m.held {
		if now.Sub(seen) >= keyHoldTimeout {
			m.session.Release(k)
			delete(m.held, k)
		}
	}
}

// saveScreenshot saves the current screen as plain text.
func (m Model) saveScreenshot(now time.Time) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("invaders_%s.txt", now.Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.session.Screen().String()), 0o600)
}

// View renders the playfield, the status line and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.session.Screen()))
	b.WriteString("\n")
	b.WriteString(RenderHUD(hudFor(m.session.Game(), m.session.Muted()), m.session.Screen().Width()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts a Bubble Tea program for sess on the local terminal.
func Run(sess *session.Session, fps int) error {
	p := tea.NewProgram(
		NewModel(sess, fps),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
