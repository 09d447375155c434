package core

// Action represents a semantic game action, abstracted from physical key
// presses. The rule engine consumes these intents and never touches an input
// library directly.
type Action int

const (
	ActionNone          Action = iota
	ActionLeft                 // A, Left arrow - move paddle left
	ActionRight                // D, Right arrow - move paddle right
	ActionRestart              // R - restart after win/lose
	ActionPause                // P - pause/unpause
	ActionPierce               // C - arm pierce mode (debug trigger)
	ActionSpeedDown            // 1 - halve target ball speed
	ActionSpeedReset           // 2 - restore configured ball speed
	ActionSpeedUp              // 3 - raise target ball speed by half
	ActionBuyMagnet            // X - purchase magnet buff
	ActionBuyMultiplier        // T - purchase score multiplier buff
	ActionBuyFreeze            // Q - purchase ball freeze
	ActionBuyInvincible        // Y - purchase invincibility
	ActionBuyLife              // E - purchase an extra life
	ActionNukeRow              // N - destroy the brick row at ball height (cheat)
	ActionQuit                 // Ctrl+C - exit session (platform only)
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
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionPierce:
		return "Pierce"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionSpeedReset:
		return "SpeedReset"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionBuyMagnet:
		return "BuyMagnet"
	case ActionBuyMultiplier:
		return "BuyMultiplier"
	case ActionBuyFreeze:
		return "BuyFreeze"
	case ActionBuyInvincible:
		return "BuyInvincible"
	case ActionBuyLife:
		return "BuyLife"
	case ActionNukeRow:
		return "NukeRow"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
