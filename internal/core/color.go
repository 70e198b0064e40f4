package core

// Color is the foreground of a screen cell. The platform renderer picks the
// actual terminal color; ColorDefault keeps the terminal's own.
type Color uint8

const (
	ColorDefault Color = iota

	// Brick rows, top to bottom. Life displays reuse red, yellow and green.
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorCyan
	ColorBlue
	ColorMagenta
	ColorBrightRed

	// Moving objects and HUD.
	ColorBrightWhite   // Ball
	ColorBrightCyan    // Puck balls
	ColorBrightBlue    // Paddle
	ColorBrightMagenta // Second paddle
	ColorBrightYellow  // Dialog titles
	ColorGray          // Score line
)
