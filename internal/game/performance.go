package game

import (
	"fmt"
	"strings"
)

// Lag beyond this many pixels between paddle centre and ball centre counts
// as slow tracking.
const slowTrackingLag = 40

// PaddleGrade is the end-of-match report card for one paddle.
type PaddleGrade struct {
	Side       Side
	Hits       int
	Misses     int     // points conceded
	ReturnRate float64 // percent of arrivals returned
	AvgLag     float64 // mean |paddle centre - ball centre|, px
	Score      float64 // 0-100
	Grade      string
	Traits     []string
}

// ---------------------------------------------------------------------------
// Grading logic
// ---------------------------------------------------------------------------

// GradePaddles grades both paddles from match stats and rally samples.
// Player first, then AI.
func GradePaddles(ms MatchStats, samples []RallySample) []PaddleGrade {
	var playerLag, aiLag float64
	for _, smp := range samples {
		playerLag += smp.PlayerLag
		aiLag += smp.AILag
	}
	if n := float64(len(samples)); n > 0 {
		playerLag /= n
		aiLag /= n
	}
	return []PaddleGrade{
		computeGrade(SidePlayer, ms.PlayerHits, ms.AIPoints, playerLag),
		computeGrade(SideAI, ms.AIHits, ms.PlayerPoints, aiLag),
	}
}

func computeGrade(side Side, hits, misses int, lag float64) PaddleGrade {
	g := PaddleGrade{
		Side:       side,
		Hits:       hits,
		Misses:     misses,
		ReturnRate: perfFrac(hits, hits+misses) * 100,
		AvgLag:     lag,
	}
	g.Score = perfClamp(g.ReturnRate - lag/2)
	g.Grade = PerfLetterGrade(g.Score)

	if misses == 0 && hits > 0 {
		g.Traits = append(g.Traits, "no_misses")
	}
	if lag > slowTrackingLag {
		g.Traits = append(g.Traits, "slow_tracking")
	}
	if hits+misses > 0 && g.ReturnRate < 50 {
		g.Traits = append(g.Traits, "leaky")
	}
	return g
}

// FormatGrades returns a human-readable grade block.
func FormatGrades(grades []PaddleGrade) string {
	var sb strings.Builder
	sb.WriteString("=== Paddle Grades ===\n")
	for _, g := range grades {
		fmt.Fprintf(&sb, "  %-3s  %-6s  hits=%d  misses=%d  returns=%.0f%%  lag=%.1f\n",
			g.Grade, g.Side, g.Hits, g.Misses, g.ReturnRate, g.AvgLag)
		if len(g.Traits) > 0 {
			fmt.Fprintf(&sb, "       Traits: %s\n", strings.Join(g.Traits, ", "))
		}
	}
	return sb.String()
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func perfFrac(num, denom int) float64 {
	if denom <= 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

func perfClamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// PerfLetterGrade maps a 0-100 score to a letter grade.
func PerfLetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}
