package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/ping-pong/internal/game"
)

// HeldKeys emulates key-down state from a terminal, which only reports
// presses. A press keeps its direction active for repeat frames; the
// terminal's own key repeat refreshes it while the key stays down.
type HeldKeys struct {
	repeat int
	dir    game.Intent
	left   int
}

func NewHeldKeys(repeat int) *HeldKeys {
	if repeat < 1 {
		repeat = 1
	}
	return &HeldKeys{repeat: repeat}
}

// Press records a movement key. The opposite direction is released at once.
func (h *HeldKeys) Press(dir game.Intent) {
	if dir == game.IntentNone {
		return
	}
	h.dir = dir
	h.left = h.repeat
}

// Next returns this frame's intent and ages the held key by one frame.
func (h *HeldKeys) Next() game.Intent {
	if h.left <= 0 {
		return game.IntentNone
	}
	h.left--
	return h.dir
}

// Release drops any held direction.
func (h *HeldKeys) Release() { h.left = 0 }

// keyAction is what a single key event asks for.
type keyAction struct {
	move   game.Intent
	choice game.Choice
	chosen bool
	quit   bool
}

func translateKey(ev *tcell.EventKey) keyAction {
	switch ev.Key() {
	case tcell.KeyUp:
		return keyAction{move: game.IntentUp}
	case tcell.KeyDown:
		return keyAction{move: game.IntentDown}
	case tcell.KeyEscape:
		return keyAction{choice: game.ChoiceExit, chosen: true}
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return keyAction{quit: true}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return keyAction{move: game.IntentUp}
		case 's', 'S':
			return keyAction{move: game.IntentDown}
		case '3':
			return keyAction{choice: game.ChoiceBestOf3, chosen: true}
		case '5':
			return keyAction{choice: game.ChoiceBestOf5, chosen: true}
		case '7':
			return keyAction{choice: game.ChoiceBestOf7, chosen: true}
		}
	}
	return keyAction{}
}
