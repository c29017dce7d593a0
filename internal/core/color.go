package core

// Color is a palette entry for a screen cell.
// The platform maps it to ANSI 256-color codes.
type Color uint8

// Palette used by the scenes.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorDarkRed
	ColorGreen
	ColorDarkGreen
	ColorBlue
	ColorPauseBlue
	ColorMenuBlue
	ColorGray
	ColorLightGray
	ColorYellow
)

// FontSize selects one of the three text tiers the scenes draw with.
type FontSize int

const (
	FontSmall FontSize = iota
	FontMedium
	FontLarge
)
