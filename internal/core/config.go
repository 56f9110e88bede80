package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the size of the player's screen pane.
type RuntimeConfig struct {
	ScreenW  int // Screen pane width in characters
	ScreenH  int // Screen pane height in characters
	TickRate int // Frames per second requested from the platform (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  40,
		ScreenH:  16,
		TickRate: 60,
	}
}

// Cell size in world pixels. Terminal cells are roughly twice as tall as
// they are wide, so the game world keeps square pixels by scaling rows more.
const (
	CellPxW = 8.0
	CellPxH = 16.0
)

// CanvasSize converts a screen pane size in cells to world pixels.
func (c RuntimeConfig) CanvasSize() (w, h float64) {
	return float64(c.ScreenW) * CellPxW, float64(c.ScreenH) * CellPxH
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase  string // Game-specific phase name
	Paused bool   // Whether the simulation is paused
	Won    bool   // Whether the session has been won
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
