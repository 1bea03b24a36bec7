package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette for the neon look of the runner.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorNeonGreen  // Player
	ColorNeonRed    // Obstacles, game over
	ColorNeonCyan   // Lanes, shield
	ColorPurple     // Slow-mo
	ColorGold       // Multiplier, combos, level ups
	ColorDim        // Faint background stars
	ColorGray
)
