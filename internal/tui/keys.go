package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction represents an action triggered by a key press.
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionQuit
	ActionHelp
	ActionList
	ActionOpen
	ActionAdd
	ActionEdit
	ActionOptions
	ActionFilter
	ActionToggleFilterBar
	ActionClearFilter
	ActionToggleStar
	ActionDelete
	ActionToggleDualPane
	ActionSplitterNarrower
	ActionSplitterWider
	ActionMoveUp
	ActionMoveDown
	ActionGoToTop
	ActionGoToBottom
	ActionPageUpList
	ActionPageDownList
	ActionPageDown
	ActionPageUp
	ActionHalfPageDown
	ActionHalfPageUp
)

// KeyHandler handles key input and maintains the count buffer.
type KeyHandler struct {
	keyBuffer string
}

// NewKeyHandler creates a new key handler.
func NewKeyHandler() *KeyHandler {
	return &KeyHandler{}
}

// Handle processes a key message and returns the action and its count.
func (k *KeyHandler) Handle(msg tea.KeyMsg) (KeyAction, int) {
	key := msg.String()

	// Numeric keys build up the buffer
	if isNumericKey(key) {
		k.keyBuffer += key
		return ActionNone, 0
	}

	count := 1
	if k.keyBuffer != "" {
		if n, err := strconv.Atoi(k.keyBuffer); err == nil && n > 0 {
			count = n
		}
	}
	k.keyBuffer = ""

	return k.keyToAction(key), count
}

// KeyBuffer returns the current key buffer.
func (k *KeyHandler) KeyBuffer() string {
	return k.keyBuffer
}

// ClearBuffer clears the key buffer.
func (k *KeyHandler) ClearBuffer() {
	k.keyBuffer = ""
}

func (k *KeyHandler) keyToAction(key string) KeyAction {
	switch key {
	case "ctrl+c", "q":
		return ActionQuit
	case "?":
		return ActionHelp
	case "esc", "L":
		return ActionList
	case "enter":
		return ActionOpen
	case "a":
		return ActionAdd
	case "e":
		return ActionEdit
	case "o":
		return ActionOptions
	case "/":
		return ActionFilter
	case "F":
		return ActionToggleFilterBar
	case "C":
		return ActionClearFilter
	case "s":
		return ActionToggleStar
	case "x":
		return ActionDelete
	case "d":
		return ActionToggleDualPane
	case "<":
		return ActionSplitterNarrower
	case ">":
		return ActionSplitterWider
	case "j", "down":
		return ActionMoveDown
	case "k", "up":
		return ActionMoveUp
	case "g", "home":
		return ActionGoToTop
	case "G", "end":
		return ActionGoToBottom
	case "[":
		return ActionPageUpList
	case "]":
		return ActionPageDownList
	case "pgdown":
		return ActionPageDown
	case "pgup":
		return ActionPageUp
	case "J", "ctrl+d":
		return ActionHalfPageDown
	case "K", "ctrl+u":
		return ActionHalfPageUp
	default:
		return ActionNone
	}
}

func isNumericKey(key string) bool {
	return len(key) == 1 && key >= "0" && key <= "9"
}
