package game

import "fmt"

// Overlay is the game-over text both front ends draw over the table.
type Overlay struct {
	Banner     string // "YOU WIN!" or "AI WINS!"
	BannerSide Side
	Replay     string
	Exit       string
	FinalScore string
}

// GameOverOverlay returns the overlay for m, or false while the match is
// still in play.
func (m RenderModel) GameOverOverlay() (Overlay, bool) {
	if !m.GameOver {
		return Overlay{}, false
	}
	o := Overlay{
		Banner:     "AI WINS!",
		BannerSide: SideAI,
		Replay:     "Press 3, 5, or 7 for Best of...",
		Exit:       "Press ESC to Exit",
		FinalScore: fmt.Sprintf("Final Score You: %d AI: %d", m.PlayerScore, m.AIScore),
	}
	if m.Winner == SidePlayer {
		o.Banner = "YOU WIN!"
		o.BannerSide = SidePlayer
	}
	return o, true
}

// Headline renders a log entry as a short line for an on-screen feed. Entries
// that make poor feed lines (per-tick positions) return false.
func (e SimLogEntry) Headline() (string, bool) {
	switch e.Category + "/" + e.Key {
	case "ball/paddle_hit":
		return fmt.Sprintf("%s returns, rally %d", e.Side, rallyFromValue(e.Value)), true
	case "ball/wall":
		return "wall bounce", true
	case "score/point":
		return fmt.Sprintf("point %s (%s)", e.Side, scoreFromValue(e.Value)), true
	case "match/start":
		return fmt.Sprintf("new match, first to %d", int(e.NumVal)), true
	case "match/over":
		return fmt.Sprintf("%s takes the match", e.Side), true
	case "match/rejected_threshold":
		return "replay rejected: " + e.Value, true
	default:
		return "", false
	}
}

func rallyFromValue(v string) int {
	var vy float64
	var rally int
	if _, err := fmt.Sscanf(v, "vy=%f rally=%d", &vy, &rally); err != nil {
		return 0
	}
	return rally
}

func scoreFromValue(v string) string {
	var p, a int
	if _, err := fmt.Sscanf(v, "%d-%d", &p, &a); err != nil {
		return v
	}
	return fmt.Sprintf("%d-%d", p, a)
}
