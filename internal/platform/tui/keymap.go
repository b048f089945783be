package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-obby/internal/core"
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
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "w", "up", "k":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "tab":
		return core.ActionSkip, false
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
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// Hold durations used when the config does not set them.
const (
	DefaultHoldInitial = 600 * time.Millisecond
	DefaultHoldRepeat  = 120 * time.Millisecond
)

// HoldTracker emulates key releases. Terminals report presses and
// auto-repeats but never releases, so a movement key counts as held for
// Initial after the first press and for Repeat after every repeat.
type HoldTracker struct {
	Initial time.Duration
	Repeat  time.Duration

	now     func() time.Time
	pressed map[core.Action]bool
	until   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker; non-positive durations select the defaults.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	if initial <= 0 {
		initial = DefaultHoldInitial
	}
	if repeat <= 0 {
		repeat = DefaultHoldRepeat
	}
	return &HoldTracker{
		Initial: initial,
		Repeat:  repeat,
		now:     time.Now,
		pressed: make(map[core.Action]bool),
		until:   make(map[core.Action]time.Time),
	}
}

// holdable reports whether an action stays down between key events.
func holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		return true
	}
	return false
}

// Press records a key event for an action.
func (h *HoldTracker) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !holdable(a) {
		h.pressed[a] = true
		return
	}

	now := h.now()
	if until, ok := h.until[a]; ok && now.Before(until) {
		// auto-repeat of a key that is still down
		if ext := now.Add(h.Repeat); ext.After(until) {
			h.until[a] = ext
		}
		return
	}
	h.pressed[a] = true
	h.until[a] = now.Add(h.Initial)

	// Turning around releases the other direction.
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
}

// Frame builds the input of the next tick and consumes the pending presses.
func (h *HoldTracker) Frame() core.InputFrame {
	in := core.NewInputFrame()
	now := h.now()
	for a, until := range h.until {
		if now.Before(until) {
			in.Hold(a)
		} else {
			delete(h.until, a)
		}
	}
	for a := range h.pressed {
		in.Set(a)
	}
	clear(h.pressed)
	return in
}

// Release drops every held key and pending press.
func (h *HoldTracker) Release() {
	clear(h.pressed)
	clear(h.until)
}
