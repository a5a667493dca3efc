package display

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/ping-pong/internal/game"
)

var (
	upKeys   = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	downKeys = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}

	choiceKeys = []struct {
		key    ebiten.Key
		choice game.Choice
	}{
		{ebiten.Key3, game.ChoiceBestOf3},
		{ebiten.KeyNumpad3, game.ChoiceBestOf3},
		{ebiten.Key5, game.ChoiceBestOf5},
		{ebiten.KeyNumpad5, game.ChoiceBestOf5},
		{ebiten.Key7, game.ChoiceBestOf7},
		{ebiten.KeyNumpad7, game.ChoiceBestOf7},
		{ebiten.KeyEscape, game.ChoiceExit},
	}
)

// watchedKeys lists every key handleInput samples.
func watchedKeys() []ebiten.Key {
	keys := []ebiten.Key{ebiten.KeyC, ebiten.KeyH}
	keys = append(keys, upKeys...)
	keys = append(keys, downKeys...)
	for _, ck := range choiceKeys {
		keys = append(keys, ck.key)
	}
	return keys
}

// intentFor resolves held movement keys; both directions cancel out.
func intentFor(up, down bool) game.Intent {
	switch {
	case up && !down:
		return game.IntentUp
	case down && !up:
		return game.IntentDown
	default:
		return game.IntentNone
	}
}

func anyDown(cur map[ebiten.Key]bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if cur[k] {
			return true
		}
	}
	return false
}

// handleInput samples the keyboard for this frame.
func (g *Game) handleInput() (game.Intent, []game.Choice) {
	cur := map[ebiten.Key]bool{}
	for _, k := range watchedKeys() {
		cur[k] = ebiten.IsKeyPressed(k)
	}
	return g.applyKeys(cur)
}

// applyKeys turns one frame of key state into an intent and the choices
// pressed this frame. Movement is level-triggered; everything else fires
// once per press.
func (g *Game) applyKeys(cur map[ebiten.Key]bool) (game.Intent, []game.Choice) {
	pressed := func(k ebiten.Key) bool { return cur[k] && !g.prevKeys[k] }

	var choices []game.Choice
	for _, ck := range choiceKeys {
		if pressed(ck.key) {
			choices = append(choices, ck.choice)
		}
	}
	if pressed(ebiten.KeyH) {
		g.toggleFeed()
	}
	if pressed(ebiten.KeyC) {
		g.copyMatchReport()
	}

	g.prevKeys = cur
	return intentFor(anyDown(cur, upKeys), anyDown(cur, downKeys)), choices
}
