package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelab/infestation/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a command. Returns the command (may
// be CmdNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (cmd core.Command, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.CmdNone, true
	}

	switch key {
	case "w", "up", "k":
		return core.CmdUp, false
	case "s", "down", "j":
		return core.CmdDown, false
	case "a", "left", "h":
		return core.CmdLeft, false
	case "d", "right", "l":
		return core.CmdRight, false
	case " ", ".":
		return core.CmdWait, false
	case "u", "z":
		return core.CmdUndo, false
	case "r":
		return core.CmdReset, false
	}

	return core.CmdNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
