package core

// Action represents a semantic game intent, abstracted from physical key
// presses. The platform maps keys to actions; games never see raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, H - move piece left
	ActionRight            // Right arrow, L - move piece right
	ActionRotateCW         // Up arrow, X - rotate clockwise
	ActionRotateCCW        // Z - rotate counterclockwise
	ActionSoftDrop         // Down arrow, J - one accelerated descent step
	ActionHardDrop         // Space - drop to the floor and lock
	ActionPause            // P, Esc - pause/unpause
	ActionRestart          // R - restart after game over
	ActionQuit             // Q, Ctrl+C - exit

	// Debug actions, accepted by the game only outside of game over.
	ActionDebugToggle   // D - toggle the debug overlay
	ActionDebugStep     // N - single gravity step, bypasses pause
	ActionDebugCycle    // T - cycle the active piece kind at spawn
	ActionDebugRowUp    // [ - move the row cursor up
	ActionDebugRowDown  // ] - move the row cursor down
	ActionDebugClearRow // C - clear the selected row, no scoring
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
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionDebugToggle:
		return "DebugToggle"
	case ActionDebugStep:
		return "DebugStep"
	case ActionDebugCycle:
		return "DebugCycle"
	case ActionDebugRowUp:
		return "DebugRowUp"
	case ActionDebugRowDown:
		return "DebugRowDown"
	case ActionDebugClearRow:
		return "DebugClearRow"
	default:
		return "Unknown"
	}
}

// Click is a pointer event in screen coordinates, carried alongside
// actions for intents that target a specific cell.
type Click struct {
	X, Y int
}

// InputFrame is the input delivered to a game for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Click is the pointer event for this frame, if any.
	Click *Click
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetClick records a pointer event for this frame.
func (f *InputFrame) SetClick(x, y int) {
	f.Click = &Click{X: x, Y: y}
}

// Clear resets all actions and the click for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Click != nil {
		c := *f.Click
		clone.Click = &c
	}
	return clone
}
