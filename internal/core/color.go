package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Palette used by the terminal renderer: one color per piece kind plus
// chrome colors for the outline and status text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorGray
	ColorBrightRed
	ColorBrightWhite
)

// ansiCodes holds the ANSI 256-color code of each palette entry.
var ansiCodes = [...]string{
	ColorDefault:     "",
	ColorRed:         "1",
	ColorGreen:       "2",
	ColorYellow:      "3",
	ColorBlue:        "4",
	ColorMagenta:     "5",
	ColorCyan:        "6",
	ColorOrange:      "208",
	ColorGray:        "245",
	ColorBrightRed:   "9",
	ColorBrightWhite: "15",
}

// ANSI returns the ANSI 256-color code for c, or "" for the terminal's
// default foreground and for colors outside the palette.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
