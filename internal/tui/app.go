// Package tui is the terminal front end: the same match as the window,
// drawn with box glyphs on a tcell screen.
package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/ping-pong/internal/game"
)

// App drives one Simulation from terminal events.
type App struct {
	screen   tcell.Screen
	sim      *game.Simulation
	renderer *Renderer
	held     *HeldKeys

	pending []game.Choice
	footer  string
	logSeen int
	quit    bool
	model   game.RenderModel
}

// NewApp wraps an initialised screen. repeat is the held-key window in frames.
func NewApp(screen tcell.Screen, sim *game.Simulation, repeat int) *App {
	return &App{
		screen:   screen,
		sim:      sim,
		renderer: NewRenderer(screen),
		held:     NewHeldKeys(repeat),
		model:    sim.Snapshot(),
	}
}

// HandleEvent applies one terminal event.
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		act := translateKey(ev)
		switch {
		case act.quit:
			a.quit = true
		case act.chosen:
			a.pending = append(a.pending, act.choice)
		default:
			a.held.Press(act.move)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// Step runs one frame and reports whether the app should keep going.
func (a *App) Step() bool {
	if a.quit {
		return false
	}
	a.model = a.sim.Tick(a.held.Next(), a.pending)
	a.pending = a.pending[:0]
	if a.model.ExitRequested {
		return false
	}
	a.updateFooter()
	a.renderer.Draw(a.model, a.footer)
	return true
}

// updateFooter shows the newest event worth a headline.
func (a *App) updateFooter() {
	entries := a.sim.SimLog.Entries()
	for _, e := range entries[a.logSeen:] {
		if line, ok := e.Headline(); ok {
			a.footer = line
		}
	}
	a.logSeen = len(entries)
}

func (a *App) Model() game.RenderModel { return a.model }

// Run polls events on a separate goroutine and steps the simulation at
// game.TargetTPS until the player exits.
func (a *App) Run() {
	ticker := time.NewTicker(time.Second / game.TargetTPS)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.renderer.Draw(a.model, a.footer)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			a.HandleEvent(ev)
			if a.quit {
				return
			}
		case <-ticker.C:
			if !a.Step() {
				return
			}
		}
	}
}

// BellOnScore rings the terminal bell for every point. It pairs with the
// speaker player so a point is audible even without an audio device.
func BellOnScore(screen tcell.Screen) game.CueNotifier {
	return game.CueFunc(func(c game.Cue) {
		if c == game.CueScore {
			_ = screen.Beep()
		}
	})
}
