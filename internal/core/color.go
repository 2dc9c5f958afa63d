package core

// Color is a palette index for a screen cell.
// The platform maps it to an ANSI 256-color code.
type Color uint8

// Palette used by sprites, bullets and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorDarkGray
)

var colorNames = [...]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorOrange:        "orange",
	ColorGray:          "gray",
	ColorDarkGray:      "dark-gray",
}

// String returns the palette name of the color.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
