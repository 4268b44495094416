package core

// Color is a palette slot for a board tile or HUD element. The TUI maps each
// slot to an ANSI 256-color code.
type Color uint8

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

// imagePalette is cycled through to give each image type its own color.
var imagePalette = []Color{
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightYellow,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
	ColorBrightWhite,
}

// ImageColor returns the color for the image at catalog position i.
func ImageColor(i int) Color {
	if i < 0 {
		return ColorDefault
	}
	return imagePalette[i%len(imagePalette)]
}
