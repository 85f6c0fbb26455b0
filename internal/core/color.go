package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// padColors pairs the resting and lit color of each pad.
var padColors = [][2]Color{
	{ColorGreen, ColorBrightGreen},
	{ColorRed, ColorBrightRed},
	{ColorYellow, ColorBrightYellow},
	{ColorBlue, ColorBrightBlue},
	{ColorMagenta, ColorBrightMagenta},
	{ColorCyan, ColorBrightCyan},
	{ColorOrange, ColorBrightYellow},
	{ColorWhite, ColorBrightWhite},
}

// PadColor returns the resting and lit colors for pad index.
// Indices beyond the palette wrap around.
func PadColor(index int) (rest, lit Color) {
	if index < 0 {
		index = -index
	}
	c := padColors[index%len(padColors)]
	return c[0], c[1]
}
