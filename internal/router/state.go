// Package router owns the player's screen state: which list is shown, which
// entry is active, and whether a game session has the wheel. Buttons,
// pointer samples and frame ticks all enter through the Router, so the
// gesture decoder, the selection and the game each have exactly one owner.
package router

// State is the screen currently shown.
type State int

const (
	StateMainMenu State = iota
	StateSettings
	StateThemeSelect
	StateGamesList
	StateInGame
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateSettings:
		return "Settings"
	case StateThemeSelect:
		return "ThemeSelect"
	case StateGamesList:
		return "GamesList"
	case StateInGame:
		return "InGame"
	default:
		return "Unknown"
	}
}

// parent is the state MENU returns to.
func (s State) parent() State {
	switch s {
	case StateThemeSelect:
		return StateSettings
	case StateInGame:
		return StateGamesList
	default:
		return StateMainMenu
	}
}

// title is the header shown above the list.
func (s State) title() string {
	switch s {
	case StateSettings:
		return "Settings"
	case StateThemeSelect:
		return "Theme"
	case StateGamesList:
		return "Games"
	case StateInGame:
		return "Now Playing"
	default:
		return "Menu"
	}
}

// EffectKind tells the platform what a handled event asks of the outside
// world.
type EffectKind int

const (
	EffectNone         EffectKind = iota
	EffectOpenLink                // Target is a URL for the link dispatcher
	EffectThemeChanged            // Target is the new theme name
	EffectGameStarted             // Target is the game ID; start the frame loop
	EffectGameExited              // Stop the frame loop
)

// Effect is the side effect of one handled event.
type Effect struct {
	Kind   EffectKind
	Target string
}

// PointerKind is the phase of a pointer sample.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// PointerEvent is one pointer sample in wheel coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}
