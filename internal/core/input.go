package core

// Button is one of the physical controls of the click-wheel.
// Keyboard keys are mapped onto the same set by the platform.
type Button int

const (
	ButtonNone      Button = iota
	ButtonMenu             // Top of the ring, Escape
	ButtonForward          // Right of the ring, Right/Down arrow
	ButtonPlayPause        // Bottom of the ring, P
	ButtonBack             // Left of the ring, Left/Up arrow
	ButtonSelect           // Centre disc, Enter/Space
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonMenu:
		return "Menu"
	case ButtonForward:
		return "Forward"
	case ButtonPlayPause:
		return "PlayPause"
	case ButtonBack:
		return "Back"
	case ButtonSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// Action represents a semantic game action, abstracted from buttons and keys.
type Action int

const (
	ActionNone   Action = iota
	ActionLaunch        // Select: launch the ball, restart after a win
	ActionPause         // Play/Pause: toggle pause while running
	ActionLeft          // Keyboard paddle step left
	ActionRight         // Keyboard paddle step right
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Unset removes an action from this frame.
func (f *InputFrame) Unset(a Action) {
	delete(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
