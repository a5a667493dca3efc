package display

import (
	"log"

	"github.com/Garsondee/ping-pong/internal/game"
)

// reportTailTicks is how much of the event log the copied report carries.
const reportTailTicks = 300

// copyMatchReport puts the match report on the system clipboard. Failures
// only reach the log and the feed.
func (g *Game) copyMatchReport() {
	report := game.MatchReport(g.sim, g.reporter, reportTailTicks)
	tick := g.sim.CurrentTick()
	if err := g.copyText(report); err != nil {
		log.Printf("clipboard: %v", err)
		g.feed.Add(tick, game.SideNone.String(), "copy failed")
		return
	}
	g.feed.Add(tick, game.SideNone.String(), "report copied")
}
