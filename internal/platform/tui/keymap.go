package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings for a game screen. Movement, fire, pause
// and mute are fed to the input resolver as held keys; the rest are
// commands handled directly by the model.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Shoot     key.Binding
	Pause     key.Binding
	Mute      key.Binding
	Start     key.Binding
	Restart   key.Binding
	Menu      key.Binding
	AutoShoot key.Binding
	Snapshot  key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Shoot, k.Pause, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Shoot},
		{k.Pause, k.Mute, k.AutoShoot},
		{k.Start, k.Restart, k.Menu},
		{k.Snapshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings. The game keys match
// core.DefaultBindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Shoot: key.NewBinding(
			key.WithKeys(" ", "j"),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/next level"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		AutoShoot: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "auto-fire"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// isGameKey reports whether msg belongs to the input resolver rather than
// to a command.
func (k KeyMap) isGameKey(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Left, k.Right, k.Shoot, k.Pause, k.Mute)
}
