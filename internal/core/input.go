package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - walk left / previous character
	ActionRight          // D, Right arrow - walk right / next character
	ActionJump           // Space, W, Up - jump, confirm on title screens
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
	ActionSkip           // F1 - skip to next level
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionSkip:
		return "Skip"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state of the player for one simulation tick.
// Pressed holds rising edges (first tick a button went down), Down holds levels.
type InputFrame struct {
	Pressed map[Action]bool
	Down    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Down:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame. A pressed action is also held.
func (f *InputFrame) Set(a Action) {
	f.ensure()
	f.Pressed[a] = true
	f.Down[a] = true
}

// Hold marks an action as held without a new press.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.Down[a] = true
}

func (f *InputFrame) ensure() {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	if f.Down == nil {
		f.Down = make(map[Action]bool)
	}
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// IsDown returns true if the action is held this frame.
func (f InputFrame) IsDown(a Action) bool {
	return f.Down[a]
}

// DPad returns the horizontal direction vector derived from held actions.
// Left wins when both directions are held.
func (f InputFrame) DPad() Vec2 {
	switch {
	case f.Down[ActionLeft]:
		return V(-1, 0)
	case f.Down[ActionRight]:
		return V(1, 0)
	}
	return Vec2{}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Down)
}
