package core

import "math"

// Glyphs used when rasterizing shapes onto cells.
const (
	GlyphSolid = '█'
	GlyphStar  = '·'
)

// Surface is the drawing target handed to a game's Draw method. Coordinates
// are canvas pixels; the implementation decides how they land on the output.
// Drawing is write-only: a game must never read back from its surface.
type Surface interface {
	// Size returns the canvas size in pixels.
	Size() (w, h float64)
	// Fill paints the whole surface. ColorDefault clears it.
	Fill(c Color)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color)
	// FillMask paints the set pixels of a mask stretched over r.
	// Any rune other than '.' and ' ' counts as set.
	FillMask(r Rect, mask []string, c Color)
	// Point marks a single dot, used for background detail.
	Point(p Vec2, c Color)
	Text(pos Vec2, text string, c Color)
	// TextCentered draws text horizontally centred on row y.
	TextCentered(y float64, text string, c Color)
}

// Canvas implements Surface on top of a Screen. A canvas pixel rectangle
// covers every cell it touches, so even sub-cell shapes stay visible.
type Canvas struct {
	screen *Screen
	w, h   float64
}

// NewCanvas creates a canvas of w x h pixels drawing onto screen.
func NewCanvas(screen *Screen, w, h float64) *Canvas {
	return &Canvas{screen: screen, w: w, h: h}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

func (c *Canvas) Size() (float64, float64) {
	return c.w, c.h
}

func (c *Canvas) Fill(col Color) {
	if col == ColorDefault {
		c.screen.Clear()
		return
	}
	for y := 0; y < c.screen.Height(); y++ {
		for x := 0; x < c.screen.Width(); x++ {
			c.screen.SetCell(x, y, GlyphSolid, col)
		}
	}
}

func (c *Canvas) FillRect(r Rect, col Color) {
	x0, y0, x1, y1 := c.cellSpan(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.screen.SetCell(x, y, GlyphSolid, col)
		}
	}
}

func (c *Canvas) StrokeRect(r Rect, col Color) {
	x0, y0, x1, y1 := c.cellSpan(r)
	if x1-x0 < 2 || y1-y0 < 2 {
		c.FillRect(r, col)
		return
	}
	c.screen.DrawBox(x0, y0, x1-x0, y1-y0, col)
}

// FillMask samples the mask at the centre of every cell whose centre lies
// inside r.
func (c *Canvas) FillMask(r Rect, mask []string, col Color) {
	if len(mask) == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	rows := make([][]rune, len(mask))
	for i, line := range mask {
		rows[i] = []rune(line)
	}

	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return
	}
	x0, y0, x1, y1 := c.cellSpan(r)
	for cy := y0; cy < y1; cy++ {
		py := (float64(cy) + 0.5) / sy
		if py < r.Y || py >= r.Bottom() {
			continue
		}
		row := rows[min(int((py-r.Y)/r.H*float64(len(rows))), len(rows)-1)]
		if len(row) == 0 {
			continue
		}
		for cx := x0; cx < x1; cx++ {
			px := (float64(cx) + 0.5) / sx
			if px < r.X || px >= r.Right() {
				continue
			}
			switch row[min(int((px-r.X)/r.W*float64(len(row))), len(row)-1)] {
			case '.', ' ':
			default:
				c.screen.SetCell(cx, cy, GlyphSolid, col)
			}
		}
	}
}

func (c *Canvas) Text(pos Vec2, text string, col Color) {
	x, y := c.ToCell(pos)
	c.screen.DrawText(x, y, text, col)
}

func (c *Canvas) TextCentered(y float64, text string, col Color) {
	_, row := c.ToCell(Vec2{Y: y})
	c.screen.DrawTextCentered(row, text, col)
}

func (c *Canvas) Point(p Vec2, col Color) {
	x, y := c.ToCell(p)
	c.screen.SetCell(x, y, GlyphStar, col)
}

// ToCell converts a canvas point to the cell containing it.
func (c *Canvas) ToCell(p Vec2) (int, int) {
	return int(math.Floor(c.col(p.X))), int(math.Floor(c.row(p.Y)))
}

// CellCenterX converts a screen column to the canvas x at its centre.
// The terminal uses it to turn a mouse column into a player position.
func (c *Canvas) CellCenterX(col int) float64 {
	sx, _ := c.scale()
	if sx == 0 {
		return 0
	}
	return (float64(col) + 0.5) / sx
}

// col and row map canvas coordinates to fractional cell coordinates.
// Multiplying before dividing keeps exact cell boundaries exact.
func (c *Canvas) col(x float64) float64 {
	if c.w <= 0 {
		return 0
	}
	return x * float64(c.screen.Width()) / c.w
}

func (c *Canvas) row(y float64) float64 {
	if c.h <= 0 {
		return 0
	}
	return y * float64(c.screen.Height()) / c.h
}

func (c *Canvas) scale() (float64, float64) {
	if c.w <= 0 || c.h <= 0 {
		return 0, 0
	}
	return float64(c.screen.Width()) / c.w, float64(c.screen.Height()) / c.h
}

// cellSpan returns the half-open cell range touched by r, clipped to the
// screen.
func (c *Canvas) cellSpan(r Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(c.col(r.X)))
	y0 = int(math.Floor(c.row(r.Y)))
	x1 = int(math.Ceil(c.col(r.Right())))
	y1 = int(math.Ceil(c.row(r.Bottom())))

	// Degenerate rects still cover the cell they sit in
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}

	x0 = ClampInt(x0, 0, c.screen.Width())
	x1 = ClampInt(x1, 0, c.screen.Width())
	y0 = ClampInt(y0, 0, c.screen.Height())
	y1 = ClampInt(y1, 0, c.screen.Height())
	return x0, y0, x1, y1
}
