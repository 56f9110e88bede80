package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a theme-specific terminal color.
type Color uint8

// Semantic colors. Themes decide the concrete terminal color for each one.
const (
	ColorDefault Color = iota
	ColorText          // Regular screen text
	ColorDim           // Secondary text, hints
	ColorHighlight     // Active menu row
	ColorBackground    // Screen fill
	ColorPaddle
	ColorBall
	ColorBrickHard   // 3 HP
	ColorBrickMedium // 2 HP
	ColorBrickSoft   // 1 HP
	ColorWin         // Win banner
	ColorWheel       // Click-wheel ring
	ColorWheelLabel  // Button captions on the ring
	ColorWheelCenter // Centre select button
)

// BrickColor returns the color used for a brick with the given hit points.
func BrickColor(hp int) Color {
	switch {
	case hp >= 3:
		return ColorBrickHard
	case hp == 2:
		return ColorBrickMedium
	default:
		return ColorBrickSoft
	}
}
