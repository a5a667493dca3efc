package display

import (
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/ping-pong/internal/game"
)

type fakeHost struct {
	copied  []string
	copyErr error
	sizes   [][2]int
}

func newTestGame(showFeed bool) (*Game, *fakeHost) {
	rep := game.NewMatchReporter(30, 300)
	sim := game.NewSimulation(game.WithSeed(1), game.WithReporter(rep))
	g := New(sim, Options{Reporter: rep, ShowFeed: showFeed, Scale: 2})
	h := &fakeHost{}
	g.copyText = func(s string) error {
		h.copied = append(h.copied, s)
		return h.copyErr
	}
	g.resize = func(w, hh int) { h.sizes = append(h.sizes, [2]int{w, hh}) }
	return g, h
}

func TestIntentFor(t *testing.T) {
	tests := []struct {
		up, down bool
		want     game.Intent
	}{
		{false, false, game.IntentNone},
		{true, false, game.IntentUp},
		{false, true, game.IntentDown},
		{true, true, game.IntentNone},
	}
	for _, tt := range tests {
		if got := intentFor(tt.up, tt.down); got != tt.want {
			t.Errorf("intentFor(%v, %v) = %s, want %s", tt.up, tt.down, got, tt.want)
		}
	}
}

func TestApplyKeys_MovementIsHeld(t *testing.T) {
	g, _ := newTestGame(false)
	for i := 0; i < 3; i++ {
		intent, _ := g.applyKeys(map[ebiten.Key]bool{ebiten.KeyArrowUp: true})
		if intent != game.IntentUp {
			t.Fatalf("frame %d: expected up while held, got %s", i, intent)
		}
	}
	if intent, _ := g.applyKeys(map[ebiten.Key]bool{ebiten.KeyS: true}); intent != game.IntentDown {
		t.Fatalf("expected down, got %s", intent)
	}
}

func TestApplyKeys_ChoicesFireOncePerPress(t *testing.T) {
	g, _ := newTestGame(false)
	held := map[ebiten.Key]bool{ebiten.Key7: true}

	_, choices := g.applyKeys(held)
	if len(choices) != 1 || choices[0] != game.ChoiceBestOf7 {
		t.Fatalf("expected best-of-7, got %v", choices)
	}
	if _, choices = g.applyKeys(held); len(choices) != 0 {
		t.Fatalf("held key repeated its choice: %v", choices)
	}
	g.applyKeys(map[ebiten.Key]bool{})
	if _, choices = g.applyKeys(map[ebiten.Key]bool{ebiten.KeyEscape: true}); len(choices) != 1 || choices[0] != game.ChoiceExit {
		t.Fatalf("expected exit, got %v", choices)
	}
}

func TestToggleFeed_ResizesWindow(t *testing.T) {
	g, h := newTestGame(false)
	if w, hh := g.Layout(0, 0); w != game.ScreenWidth || hh != game.ScreenHeight {
		t.Fatalf("unexpected layout %dx%d", w, hh)
	}
	g.applyKeys(map[ebiten.Key]bool{ebiten.KeyH: true})
	g.applyKeys(map[ebiten.Key]bool{ebiten.KeyH: true})
	if !g.showFeed || len(h.sizes) != 1 {
		t.Fatalf("expected one toggle, got show=%v resizes=%d", g.showFeed, len(h.sizes))
	}
	want := [2]int{(game.ScreenWidth + feedPanelWidth) * 2, game.ScreenHeight * 2}
	if h.sizes[0] != want {
		t.Fatalf("expected window %v, got %v", want, h.sizes[0])
	}
}

func TestCopyMatchReport(t *testing.T) {
	g, h := newTestGame(true)
	for i := 0; i < 120; i++ {
		g.model = g.sim.Tick(game.IntentNone, nil)
	}
	g.applyKeys(map[ebiten.Key]bool{ebiten.KeyC: true})
	if len(h.copied) != 1 || !strings.Contains(h.copied[0], "match report") {
		t.Fatalf("expected a copied report, got %v", h.copied)
	}
	last := g.feed.Recent()[g.feed.Len()-1]
	if last.Message != "report copied" {
		t.Fatalf("expected feed confirmation, got %q", last.Message)
	}

	h.copyErr = errors.New("no clipboard")
	g.applyKeys(map[ebiten.Key]bool{})
	g.applyKeys(map[ebiten.Key]bool{ebiten.KeyC: true})
	if last := g.feed.Recent()[g.feed.Len()-1]; last.Message != "copy failed" {
		t.Fatalf("expected failure in feed, got %q", last.Message)
	}
}

func TestPullEvents_SkipsPositions(t *testing.T) {
	rep := game.NewMatchReporter(0, 0)
	sim := game.NewSimulation(game.WithSeed(2), game.WithSimLog(game.NewSimLog(true)))
	g := New(sim, Options{Reporter: rep})
	for i := 0; i < 200; i++ {
		sim.Tick(game.IntentNone, nil)
		g.pullEvents()
	}
	if g.logSeen != sim.SimLog.Len() {
		t.Fatalf("feed lagging the log: %d of %d", g.logSeen, sim.SimLog.Len())
	}
	for _, e := range g.feed.Recent() {
		if strings.HasPrefix(e.Message, "(") {
			t.Fatalf("position entry leaked into the feed: %q", e.Message)
		}
	}
	if g.feed.Len() == 0 {
		t.Fatal("expected rally events in the feed")
	}
}

func TestEventFeed_Wraps(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < feedMaxEntries+5; i++ {
		f.Add(i, "ai", "x")
	}
	got := f.Recent()
	if len(got) != feedMaxEntries {
		t.Fatalf("expected %d entries, got %d", feedMaxEntries, len(got))
	}
	if got[0].Tick != 5 || got[len(got)-1].Tick != feedMaxEntries+4 {
		t.Fatalf("unexpected order: first T=%d last T=%d", got[0].Tick, got[len(got)-1].Tick)
	}
}
