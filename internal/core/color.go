package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal style.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlock         // occupied field cells
	ColorPreview       // next-piece preview
	ColorBorder
	ColorHUD
	ColorHUDValue
	ColorOverlay
	ColorDim
)
