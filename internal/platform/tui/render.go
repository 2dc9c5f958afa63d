package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// hudLines is the number of rows below the playfield: status and help.
const hudLines = 2

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudLivesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hudFlagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// HUD describes the status line under the playfield.
type HUD struct {
	Score     int
	HighScore int
	Level     int
	MaxLevel  int
	Lives     int
	Muted     bool
	AutoShoot bool
}

// hudFor collects the status line values from a game.
func hudFor(g *invaders.Game, muted bool) HUD {
	return HUD{
		Score:     g.Score(),
		HighScore: g.HighScore(),
		Level:     g.Level(),
		MaxLevel:  g.MaxLevel(),
		Lives:     g.Lives(),
		Muted:     muted,
		AutoShoot: g.AutoShoot(),
	}
}

// RenderHUD renders the status line.
func RenderHUD(h HUD, width int) string {
	field := func(label, value string) string {
		return hudLabelStyle.Render(label+" ") + hudValueStyle.Render(value)
	}

	parts := []string{
		field("SCORE", fmt.Sprintf("%06d", h.Score)),
		field("HI", fmt.Sprintf("%06d", h.HighScore)),
		field("LEVEL", fmt.Sprintf("%d/%d", h.Level, h.MaxLevel)),
		hudLabelStyle.Render("LIVES ") + hudLivesStyle.Render(strings.Repeat("♥", max(h.Lives, 0))),
	}
	if h.AutoShoot {
		parts = append(parts, hudFlagStyle.Render("[AUTO]"))
	}
	if h.Muted {
		parts = append(parts, hudFlagStyle.Render("[MUTED]"))
	}

	line := strings.Join(parts, "   ")
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
