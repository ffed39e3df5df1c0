package core

// Action is a player intent. Hosts map physical keys onto actions.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, W, Up - jump
	ActionConfirm           // Enter - start a run from the title screen
	ActionBack              // B, Escape - back to the title screen
	ActionRestart           // R key - restart after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - freeze/unfreeze the simulation
	ActionScoreboard        // Tab - open the leaderboard
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
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
	case ActionScoreboard:
		return "Scoreboard"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one tick.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= 32 {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= 32 {
		return false
	}
	return f.bits&(1<<a) != 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}
