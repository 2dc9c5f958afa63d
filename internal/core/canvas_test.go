package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 80x25 cells over 1600x1000 pixels: 20px per column, 40px per row.
func newTestCanvas() *Canvas {
	return NewCanvas(NewScreen(80, 25), 1600, 1000)
}

func TestCanvasFillRectCoversTouchedCells(t *testing.T) {
	tests := []struct {
		name  string
		rect  Rect
		cells [][2]int
	}{
		{"exact cell", NewRect(0, 0, 20, 40), [][2]int{{0, 0}}},
		{"sub-cell", NewRect(5, 5, 2, 2), [][2]int{{0, 0}}},
		{"straddles columns", NewRect(15, 0, 10, 40), [][2]int{{0, 0}, {1, 0}}},
		{"clipped at edge", NewRect(1590, 990, 40, 40), [][2]int{{79, 24}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas()
			c.FillRect(tt.rect, ColorRed)

			filled := 0
			for y := 0; y < c.Screen().Height(); y++ {
				for x := 0; x < c.Screen().Width(); x++ {
					if c.Screen().Get(x, y) == GlyphSolid {
						filled++
					}
				}
			}
			assert.Equal(t, len(tt.cells), filled)
			for _, cell := range tt.cells {
				got := c.Screen().GetCell(cell[0], cell[1])
				assert.Equal(t, GlyphSolid, got.Rune)
				assert.Equal(t, ColorRed, got.Color)
			}
		})
	}
}

func TestCanvasFillRectOffscreen(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(NewRect(-100, -100, 50, 50), ColorRed)
	c.FillRect(NewRect(2000, 0, 50, 50), ColorRed)
	assert.Equal(t, NewScreen(80, 25).String(), c.Screen().String())
}

func TestCanvasFillMask(t *testing.T) {
	c := newTestCanvas()
	// 2x2 cells, one mask pixel per cell
	c.FillMask(NewRect(0, 0, 40, 80), []string{
		"#.",
		".#",
	}, ColorGreen)

	assert.Equal(t, GlyphSolid, c.Screen().Get(0, 0))
	assert.Equal(t, ' ', c.Screen().Get(1, 0))
	assert.Equal(t, ' ', c.Screen().Get(0, 1))
	assert.Equal(t, GlyphSolid, c.Screen().Get(1, 1))
	assert.Equal(t, ColorGreen, c.Screen().GetCell(1, 1).Color)
}

func TestCanvasStrokeRect(t *testing.T) {
	c := newTestCanvas()
	c.StrokeRect(NewRect(0, 0, 100, 120), ColorWhite)

	assert.Equal(t, '┌', c.Screen().Get(0, 0))
	assert.Equal(t, '┐', c.Screen().Get(4, 0))
	assert.Equal(t, '└', c.Screen().Get(0, 2))
	assert.Equal(t, ' ', c.Screen().Get(2, 1))
}

func TestCanvasText(t *testing.T) {
	c := newTestCanvas()
	c.Text(Vec2{X: 40, Y: 80}, "HI", ColorYellow)
	assert.Equal(t, 'H', c.Screen().Get(2, 2))
	assert.Equal(t, 'I', c.Screen().Get(3, 2))

	c.TextCentered(400, "PAUSED", ColorWhite)
	assert.Equal(t, "PAUSED", c.Screen().Row(10)[37:43])
}

func TestCanvasFill(t *testing.T) {
	c := newTestCanvas()
	c.Fill(ColorBlue)
	assert.Equal(t, GlyphSolid, c.Screen().Get(79, 24))

	c.Fill(ColorDefault)
	assert.Equal(t, ' ', c.Screen().Get(79, 24))
}

func TestCanvasCellCenterX(t *testing.T) {
	c := newTestCanvas()
	assert.InDelta(t, 10.0, c.CellCenterX(0), 1e-9)
	assert.InDelta(t, 810.0, c.CellCenterX(40), 1e-9)

	x, y := c.ToCell(Vec2{X: 810, Y: 999})
	assert.Equal(t, 40, x)
	assert.Equal(t, 24, y)
}
