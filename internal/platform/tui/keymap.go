package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/match-league/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. Unbound keys map to
// ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "ctrl+s":
		return core.ActionScreenshot
	case "w", "up":
		return core.ActionUp
	case "s", "down":
		return core.ActionDown
	case "a", "left":
		return core.ActionLeft
	case "d", "right":
		return core.ActionRight
	case " ":
		return core.ActionSelect
	case "enter":
		return core.ActionConfirm
	case "esc":
		return core.ActionCancel
	case "h", "p":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	case "tab":
		return core.ActionNextDifficulty
	case "shift+tab":
		return core.ActionPrevDifficulty
	case "1":
		return core.ActionEasy
	case "2":
		return core.ActionMedium
	case "3":
		return core.ActionHard
	}
	return core.ActionNone
}

// GameKeyMap describes the bindings for the help bar. It mirrors MapKey.
type GameKeyMap struct {
	Move       key.Binding
	Select     key.Binding
	Commit     key.Binding
	Cancel     key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Difficulty key.Binding
	Start      key.Binding
	Quit       key.Binding
}

// DefaultGameKeyMap returns the help bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d"),
			key.WithHelp("arrows/wasd", "move"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "match"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Pause: key.NewBinding(
			key.WithKeys("h", "p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "1", "2", "3"),
			key.WithHelp("tab/1-3", "difficulty"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// pickerKeys is the help view shown before a session starts.
type pickerKeys GameKeyMap

func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Difficulty, k.Start, k.Quit}
}

func (k pickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Select, k.Commit, k.Cancel, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Select, k.Commit, k.Cancel},
		{k.Pause, k.Restart, k.Difficulty, k.Quit},
	}
}
