package game

import (
	"fmt"
	"math"
	"strings"
)

type MatchOutcome int

const (
	OutcomeInProgress MatchOutcome = iota
	OutcomePlayerVictory
	OutcomeAIVictory
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomePlayerVictory:
		return "player_victory"
	case OutcomeAIVictory:
		return "ai_victory"
	case OutcomeInProgress:
		return "in_progress"
	default:
		return "unknown"
	}
}

// MatchStats summarises one match from its SimLog.
type MatchStats struct {
	Outcome      MatchOutcome
	Threshold    int
	Ticks        int
	PlayerPoints int
	AIPoints     int
	PlayerHits   int
	AIHits       int
	WallBounces  int
	LongestRally int
	PeakAbsVY    float64
	Rejected     int // replay selections refused as unsupported
}

// Margin returns the winner's lead in points.
func (ms MatchStats) Margin() int {
	d := ms.PlayerPoints - ms.AIPoints
	if d < 0 {
		return -d
	}
	return d
}

// DetermineMatchStats reads the entries of the most recent match in sl.
// Entries before the last match/start belong to earlier matches and are
// skipped; a log with no start entry is read from the beginning.
func DetermineMatchStats(sl *SimLog) MatchStats {
	entries := sl.Entries()
	from := 0
	ms := MatchStats{Threshold: DefaultThreshold}
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Category == "match" && entries[i].Key == "start" {
			from = i
			ms.Threshold = int(entries[i].NumVal)
			break
		}
	}

	startTick := 0
	if len(entries) > 0 {
		startTick = entries[from].Tick
	}
	for _, e := range entries[from:] {
		ms.Ticks = e.Tick - startTick
		switch e.Category + "/" + e.Key {
		case "ball/wall":
			ms.WallBounces++
		case "ball/paddle_hit":
			if e.Side == SidePlayer.String() {
				ms.PlayerHits++
			} else {
				ms.AIHits++
			}
			if v := math.Abs(e.NumVal); v > ms.PeakAbsVY {
				ms.PeakAbsVY = v
			}
		case "score/point":
			if e.Side == SidePlayer.String() {
				ms.PlayerPoints++
			} else {
				ms.AIPoints++
			}
			if rally := int(e.NumVal); rally > ms.LongestRally {
				ms.LongestRally = rally
			}
		case "match/over":
			ms.Threshold = int(e.NumVal)
			if e.Side == SidePlayer.String() {
				ms.Outcome = OutcomePlayerVictory
			} else {
				ms.Outcome = OutcomeAIVictory
			}
		case "match/rejected_threshold":
			ms.Rejected++
		}
	}
	return ms
}

// FormatMatchStats renders stats as the block printed by the headless
// report and copied to the clipboard by the window front end.
func FormatMatchStats(ms MatchStats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "outcome=%s first_to=%d score=%d-%d margin=%d ticks=%d\n",
		ms.Outcome, ms.Threshold, ms.PlayerPoints, ms.AIPoints, ms.Margin(), ms.Ticks)
	fmt.Fprintf(&sb, "hits: player=%d ai=%d  wall_bounces=%d  longest_rally=%d  peak_vy=%.2f\n",
		ms.PlayerHits, ms.AIHits, ms.WallBounces, ms.LongestRally, ms.PeakAbsVY)
	if ms.Rejected > 0 {
		fmt.Fprintf(&sb, "rejected_replay_choices=%d\n", ms.Rejected)
	}
	return sb.String()
}

// MatchReport combines the match statistics, the latest rally window and
// the tail of the event log into one text block.
func MatchReport(s *Simulation, r *MatchReporter, tailTicks int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Ping-Pong match report (T=%d) ---\n", s.tick)
	sb.WriteString(FormatMatchStats(DetermineMatchStats(s.SimLog)))
	if r != nil {
		sb.WriteString(r.WindowSummary().Format())
	}
	if tailTicks > 0 {
		from := s.tick - tailTicks + 1
		if from < 0 {
			from = 0
		}
		fmt.Fprintf(&sb, "events T=%d..%d:\n", from, s.tick)
		sb.WriteString(s.SimLog.FormatRange(from, s.tick))
	}
	return sb.String()
}
