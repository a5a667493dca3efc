// Package display is the windowed front end. Game wraps one Simulation and
// implements ebiten.Game: it samples the keyboard, ticks the simulation once
// per frame and draws the returned RenderModel.
package display

import (
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/ping-pong/internal/game"
)

// Options configures a Game.
type Options struct {
	Reporter *game.MatchReporter // feeds the rally window of copied reports
	ShowFeed bool
	Scale    float64 // window scale; the logical size stays fixed
}

type Game struct {
	sim      *game.Simulation
	reporter *game.MatchReporter
	feed     *EventFeed
	face     text.Face
	model    game.RenderModel

	prevKeys map[ebiten.Key]bool
	showFeed bool
	scale    float64
	logSeen  int // SimLog entries already pushed to the feed

	copyText func(string) error
	resize   func(w, h int)
}

func New(sim *game.Simulation, opts Options) *Game {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	g := &Game{
		sim:      sim,
		reporter: opts.Reporter,
		feed:     NewEventFeed(),
		face:     text.NewGoXFace(basicfont.Face7x13),
		model:    sim.Snapshot(),
		prevKeys: make(map[ebiten.Key]bool),
		showFeed: opts.ShowFeed,
		scale:    opts.Scale,
		copyText: clipboard.WriteAll,
		resize:   ebiten.SetWindowSize,
	}
	g.pullEvents()
	return g
}

func (g *Game) Update() error {
	intent, choices := g.handleInput()
	g.model = g.sim.Tick(intent, choices)
	g.pullEvents()
	if g.model.ExitRequested {
		return ebiten.Termination
	}
	return nil
}

// pullEvents copies new SimLog entries into the feed.
func (g *Game) pullEvents() {
	entries := g.sim.SimLog.Entries()
	for _, e := range entries[g.logSeen:] {
		if line, ok := e.Headline(); ok {
			g.feed.Add(e.Tick, e.Side, line)
		}
	}
	g.logSeen = len(entries)
}

func (g *Game) toggleFeed() {
	g.showFeed = !g.showFeed
	g.resize(g.WindowSize())
}

func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.sim.Size()
	if g.showFeed {
		return int(w) + feedPanelWidth, int(h)
	}
	return int(w), int(h)
}

// WindowSize is the layout size scaled for the window.
func (g *Game) WindowSize() (int, int) {
	w, h := g.Layout(0, 0)
	return int(float64(w) * g.scale), int(float64(h) * g.scale)
}

// Model returns the most recent frame.
func (g *Game) Model() game.RenderModel { return g.model }
