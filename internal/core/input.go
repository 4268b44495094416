package core

// Action represents a semantic game action, abstracted from physical key
// presses. Hosts translate keys to actions and actions to engine commands.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // W, Up arrow
	ActionDown                  // S, Down arrow
	ActionLeft                  // A, Left arrow
	ActionRight                 // D, Right arrow
	ActionSelect                // Space - toggle the cell under the cursor
	ActionConfirm               // Enter - start a session or commit a match
	ActionCancel                // Escape - clear the selection
	ActionPause                 // H, P - pause/resume
	ActionRestart               // R - back to difficulty selection
	ActionNextDifficulty        // Tab
	ActionPrevDifficulty        // Shift+Tab
	ActionEasy                  // 1
	ActionMedium                // 2
	ActionHard                  // 3
	ActionScreenshot            // Ctrl+S
	ActionQuit                  // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionNextDifficulty:
		return "NextDifficulty"
	case ActionPrevDifficulty:
		return "PrevDifficulty"
	case ActionEasy:
		return "Easy"
	case ActionMedium:
		return "Medium"
	case ActionHard:
		return "Hard"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Movement returns the one-cell step for a directional action.
func (a Action) Movement() (dx, dy int, ok bool) {
	switch a {
	case ActionUp:
		return 0, -1, true
	case ActionDown:
		return 0, 1, true
	case ActionLeft:
		return -1, 0, true
	case ActionRight:
		return 1, 0, true
	}
	return 0, 0, false
}
