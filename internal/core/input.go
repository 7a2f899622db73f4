package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - walk left
	ActionRight          // D, Right arrow - walk right
	ActionJump           // Space, W, Up - jump (held for full height)
	ActionShoot          // X, F - fire laser while powered up
	ActionUp             // W, Up - menu up
	ActionDown           // S, Down - menu down
	ActionConfirm        // Enter, Space - confirm selection
	ActionBack           // Escape - back / resume
	ActionPause          // P, Escape - pause during play
	ActionQuit           // Ctrl+C - exit
	ActionAny            // any key at all, used by transition screens
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
	case ActionShoot:
		return "Shoot"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// InputFrame is the immutable input snapshot for one simulation tick.
// Held is the set of actions whose keys are currently down; Pressed holds
// the discrete press events that arrived since the previous tick.
type InputFrame struct {
	held    map[Action]bool
	pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Press records a press event. A pressed action also counts as held,
// and every press also registers ActionAny.
func (f *InputFrame) Press(a Action) {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	f.pressed[a] = true
	f.pressed[ActionAny] = true
	f.Hold(a)
}

// Held reports whether the action's key is down.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Pressed reports whether the action was pressed this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

// AnyPressed reports whether any key was pressed this frame.
func (f InputFrame) AnyPressed() bool {
	return f.pressed[ActionAny]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.held {
		delete(f.held, k)
	}
	for k := range f.pressed {
		delete(f.pressed, k)
	}
}
