package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/session"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultInvadersConfig()
	cfg.Enemy.ShootProbability = 0
	sess := session.New(session.Options{
		Game:    cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3},
	})
	return NewModel(sess, 60)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestModelEnterStartsGame(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, invaders.StateMenu, m.session.Game().State())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, invaders.StatePlaying, m.session.Game().State())
}

func TestModelGameKeysAreHeld(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	pressed := time.Now()
	m.session.Start(pressed)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.True(t, m.session.Input().Snapshot().Left)
	assert.Contains(t, m.held, "left")

	// Still held while waiting for the terminal's first auto-repeat
	m = send(t, m, TickMsg(pressed.Add(450*time.Millisecond)))
	assert.True(t, m.session.Input().Snapshot().Left)
	assert.Contains(t, m.held, "left")

	// A tick long after the last repeat releases the key
	m = send(t, m, TickMsg(pressed.Add(time.Second)))
	assert.False(t, m.session.Input().Snapshot().Left)
	assert.Empty(t, m.held)
}

func TestModelSpaceFires(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, m.session.Input().Snapshot().Shoot)
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = send(t, m, runes("r"))
	assert.Equal(t, invaders.StatePlaying, m.session.Game().State())

	for m.session.Game().State() != invaders.StateGameOver {
		m.session.Game().Player().Invulnerable = false
		m.session.Game().PlayerHit()
	}
	m = send(t, m, runes("r"))
	assert.Equal(t, invaders.StatePlaying, m.session.Game().State())
	assert.Equal(t, 3, m.session.Game().Lives())
}

func TestModelAutoShootToggle(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("t"))
	assert.True(t, m.session.Game().AutoShoot())
	m = send(t, m, runes("t"))
	assert.False(t, m.session.Game().AutoShoot())
}

func TestModelMouseMovesPlayer(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	p := m.session.Game().Player()
	want := m.session.Canvas().CellCenterX(10)
	assert.InDelta(t, want, p.Pos.X+p.Width/2, 1e-9)

	m = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.session.Input().Snapshot().Shoot)
	m = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.False(t, m.session.Input().Snapshot().Shoot)
}

func TestModelMouseReleaseWithoutButtonStopsFiring(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.session.Input().Snapshot().Shoot)
	m = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	assert.False(t, m.session.Input().Snapshot().Shoot)

	// A release while paused still stops firing after resume
	m = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.session.Pause()
	m = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	m.session.Resume()
	assert.False(t, m.session.Input().Snapshot().Shoot)
}

func TestModelResizeKeepsHUDRows(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.session.Screen().Width())
	assert.Equal(t, 40-hudLines, m.session.Screen().Height())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).Quitting())
	assert.Empty(t, next.(Model).View())
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	m.session.Start(time.Unix(0, 0))
	m.session.Frame(time.Unix(0, 0).Add(50 * time.Millisecond))

	view := m.View()
	assert.Contains(t, view, "S P A C E")
	assert.Contains(t, view, "SCORE")
	assert.Contains(t, view, "LIVES")
}

func TestRenderScreenPlainCells(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hi", core.ColorDefault)
	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "hi")
}

func TestRenderHUD(t *testing.T) {
	out := RenderHUD(HUD{Score: 120, HighScore: 500, Level: 2, MaxLevel: 5, Lives: 3, Muted: true}, 200)
	assert.Contains(t, out, "000120")
	assert.Contains(t, out, "000500")
	assert.Contains(t, out, "2/5")
	assert.Contains(t, out, "♥♥♥")
	assert.Contains(t, out, "[MUTED]")
	assert.NotContains(t, out, "[AUTO]")
}

type fakeRunSource struct {
	top, recent []storage.Run
	err         error
}

func (f fakeRunSource) TopRuns(int) ([]storage.Run, error)    { return f.top, f.err }
func (f fakeRunSource) RecentRuns(int) ([]storage.Run, error) { return f.recent, f.err }
func (f fakeRunSource) Stats() (*storage.Stats, error) {
	return &storage.Stats{Runs: len(f.top), HighScore: 900}, nil
}

func TestScoreboardViews(t *testing.T) {
	src := fakeRunSource{
		top:    []storage.Run{{Score: 900, Level: 5, Victory: true, Duration: 75 * time.Second}},
		recent: []storage.Run{{Score: 10, Level: 1, Player: "ssh:bob"}},
	}
	m := NewScoreboardModel(src, 120, 40)
	assert.Equal(t, viewTop, m.view)
	assert.Len(t, m.runs, 1)
	assert.Contains(t, m.View(), "HIGH SCORES")
	assert.Contains(t, m.View(), "best 900")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, viewRecent, m.view)
	assert.Equal(t, 10, m.runs[0].Score)
	assert.Contains(t, m.View(), "RECENT RUNS")
}

func TestScoreboardEmptyAndError(t *testing.T) {
	empty := NewScoreboardModel(nil, 80, 24)
	assert.Contains(t, empty.View(), "No runs recorded yet")

	broken := NewScoreboardModel(fakeRunSource{err: errors.New("locked")}, 80, 24)
	assert.Contains(t, broken.View(), "locked")
}

func TestRunRow(t *testing.T) {
	row := runRow(1, storage.Run{Score: 1230, Level: 5, Victory: true, Duration: 95 * time.Second})
	assert.Equal(t, "#1", row[0])
	assert.Equal(t, "1230", row[1])
	assert.Equal(t, "VICTORY", row[3])
	assert.Equal(t, "1:35", row[4])
	assert.Equal(t, "local", row[5])
}
