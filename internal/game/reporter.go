package game

import (
	"fmt"
	"math"
	"strings"
)

// reportIntervalTicks is how often the reporter samples (~1s at 60TPS).
const reportIntervalTicks = 60

// reportWindowTicks is the default sliding window for recent-rally reports (~10s at 60TPS).
const reportWindowTicks = 600

// RallySample is one periodic snapshot of play.
type RallySample struct {
	Tick        int
	PlayerScore int
	AIScore     int
	RallyHits   int
	AbsVX       float64
	AbsVY       float64
	AILag       float64 // |AI paddle centre - ball centre|
	PlayerLag   float64
}

// MatchReporter samples a Simulation periodically and summarises the
// samples over a sliding window.
type MatchReporter struct {
	history     []RallySample
	interval    int
	windowTicks int
}

// NewMatchReporter creates a reporter. Non-positive arguments select the
// defaults.
func NewMatchReporter(interval, windowTicks int) *MatchReporter {
	if interval <= 0 {
		interval = reportIntervalTicks
	}
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &MatchReporter{interval: interval, windowTicks: windowTicks}
}

// Interval returns the sampling period in ticks.
func (r *MatchReporter) Interval() int {
	return r.interval
}

// Collect records one sample of the simulation's current state.
func (r *MatchReporter) Collect(s *Simulation) {
	ballY := s.ball.CenterY()
	r.history = append(r.history, RallySample{
		Tick:        s.tick,
		PlayerScore: s.playerScore,
		AIScore:     s.aiScore,
		RallyHits:   s.rallyHits,
		AbsVX:       math.Abs(s.ball.VX),
		AbsVY:       math.Abs(s.ball.VY),
		AILag:       math.Abs(s.ai.Bounds().CenterY() - ballY),
		PlayerLag:   math.Abs(s.player.Bounds().CenterY() - ballY),
	})
}

// Latest returns the most recent sample, or nil if none were taken.
func (r *MatchReporter) Latest() *RallySample {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// History returns every sample in order.
func (r *MatchReporter) History() []RallySample {
	return r.history
}

// WindowReport is an aggregated summary over a time window.
type WindowReport struct {
	FromTick, ToTick int
	SampleCount      int

	AvgRallyHits  float64
	PeakRallyHits int
	AvgAbsVY      float64
	PeakAbsVY     float64
	AvgAILag      float64
	AvgPlayerLag  float64

	PointsScored int // points scored between the first and last sample
}

// WindowSummary aggregates the samples of the most recent window.
func (r *MatchReporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}

	latestTick := r.history[len(r.history)-1].Tick
	cutoff := latestTick - r.windowTicks
	var window []RallySample
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i].Tick < cutoff {
			break
		}
		window = append(window, r.history[i])
	}

	n := float64(len(window))
	newest, oldest := window[0], window[len(window)-1]
	wr := &WindowReport{
		FromTick:     oldest.Tick,
		ToTick:       newest.Tick,
		SampleCount:  len(window),
		PointsScored: newest.PlayerScore + newest.AIScore - oldest.PlayerScore - oldest.AIScore,
	}
	for _, smp := range window {
		wr.AvgRallyHits += float64(smp.RallyHits)
		wr.AvgAbsVY += smp.AbsVY
		wr.AvgAILag += smp.AILag
		wr.AvgPlayerLag += smp.PlayerLag
		if smp.RallyHits > wr.PeakRallyHits {
			wr.PeakRallyHits = smp.RallyHits
		}
		if smp.AbsVY > wr.PeakAbsVY {
			wr.PeakAbsVY = smp.AbsVY
		}
	}
	wr.AvgRallyHits /= n
	wr.AvgAbsVY /= n
	wr.AvgAILag /= n
	wr.AvgPlayerLag /= n
	if wr.PointsScored < 0 {
		// A new match started inside the window.
		wr.PointsScored = newest.PlayerScore + newest.AIScore
	}
	return wr
}

// Format returns a human-readable multi-line string of the window summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Rally Report (T=%d..%d, %d samples) ===\n",
		wr.FromTick, wr.ToTick, wr.SampleCount)
	fmt.Fprintf(&sb, "  rally hits: avg=%.1f peak=%d\n", wr.AvgRallyHits, wr.PeakRallyHits)
	fmt.Fprintf(&sb, "  |vy|:       avg=%.2f peak=%.2f\n", wr.AvgAbsVY, wr.PeakAbsVY)
	fmt.Fprintf(&sb, "  lag:        player=%.1f ai=%.1f\n", wr.AvgPlayerLag, wr.AvgAILag)
	fmt.Fprintf(&sb, "  points in window: %d\n", wr.PointsScored)
	return sb.String()
}
