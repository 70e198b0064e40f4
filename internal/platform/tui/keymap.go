package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bricker/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "up", "k":
		return core.ActionUp, false
	case "down", "j":
		return core.ActionDown, false
	case "enter", "y":
		return core.ActionConfirm, false
	case "esc", "n", "b":
		return core.ActionBack, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "w":
		return core.ActionForceWin, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// HeldKeys turns key presses into a per-tick input frame.
//
// Terminals report presses (and auto-repeat) but no releases, so a movement
// key counts as held for a short window after its last press. Every other
// action fires on the next frame only.
type HeldKeys struct {
	hold    time.Duration
	until   map[core.Action]time.Time
	pending core.InputFrame
}

// NewHeldKeys creates a latch that keeps movement keys down for hold.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{
		hold:    hold,
		until:   make(map[core.Action]time.Time),
		pending: core.NewInputFrame(),
	}
}

// Press records an action at time now.
func (h *HeldKeys) Press(action core.Action, now time.Time) {
	switch action {
	case core.ActionNone:
		return
	case core.ActionLeft, core.ActionRight:
		h.until[action] = now.Add(h.hold)
		// Pressing one direction releases the other.
		opposite := core.ActionLeft
		if action == core.ActionLeft {
			opposite = core.ActionRight
		}
		delete(h.until, opposite)
	default:
		h.pending.Set(action)
	}
}

// Frame returns the actions active at now and consumes the one-shot ones.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()
	for action, until := range h.until {
		if now.Before(until) {
			frame.Set(action)
		} else {
			delete(h.until, action)
		}
	}
	return frame
}

// Release drops every held and pending action.
func (h *HeldKeys) Release() {
	clear(h.until)
	h.pending.Clear()
}
