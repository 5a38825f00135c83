package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes in the platform layer.
type Color uint8

// Predefined colors. Body glyphs use the brightness ramp from gray up to
// bright white depending on local density; the overlay and status line use
// the named colors.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorRed
	ColorCyan
	ColorBrightCyan
	ColorGreen
	ColorMagenta
)
