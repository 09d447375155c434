package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return core.ActionQuit, true

	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false

	case "c":
		return core.ActionPierce, false
	case "1":
		return core.ActionSpeedDown, false
	case "2":
		return core.ActionSpeedReset, false
	case "3":
		return core.ActionSpeedUp, false

	// Shop hotkeys
	case "x":
		return core.ActionBuyMagnet, false
	case "t":
		return core.ActionBuyMultiplier, false
	case "q":
		return core.ActionBuyFreeze, false
	case "y":
		return core.ActionBuyInvincible, false
	case "e":
		return core.ActionBuyLife, false
	case "n":
		return core.ActionNukeRow, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
