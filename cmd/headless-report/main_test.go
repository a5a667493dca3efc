package main

import (
	"strings"
	"testing"

	"github.com/Garsondee/ping-pong/internal/game"
)

func TestWinCounts(t *testing.T) {
	all := []runStats{
		{finished: true, winner: game.SidePlayer},
		{finished: true, winner: game.SideAI},
		{finished: true, winner: game.SideAI},
		{finished: false},
	}
	player, ai, unfinished := winCounts(all)
	if player != 1 || ai != 2 || unfinished != 1 {
		t.Fatalf("expected 1/2/1, got player=%d ai=%d unfinished=%d", player, ai, unfinished)
	}
}

func TestDetectStalemate_TrueWhenRallyNeverEnds(t *testing.T) {
	rs := runStats{
		finished:      false,
		windowSummary: &game.WindowReport{PeakRallyHits: 55, PointsScored: 0},
	}
	stalled, reason := detectStalemate(rs)
	if !stalled {
		t.Fatalf("expected stalemate=true, got false (reason=%s)", reason)
	}
	if !strings.Contains(reason, "endless_rally=55") {
		t.Fatalf("expected reason to mention the rally, got: %s", reason)
	}
}

func TestDetectStalemate_FalseWhenFinished(t *testing.T) {
	rs := runStats{
		finished:      true,
		windowSummary: &game.WindowReport{PeakRallyHits: 90},
	}
	if stalled, reason := detectStalemate(rs); stalled {
		t.Fatalf("a finished match is never a stalemate (reason=%s)", reason)
	}
}

func TestDetectStalemate_FalseWhenPointsStillFalling(t *testing.T) {
	rs := runStats{
		finished:      false,
		windowSummary: &game.WindowReport{PeakRallyHits: 3, PointsScored: 2},
	}
	if stalled, reason := detectStalemate(rs); stalled {
		t.Fatalf("expected a slow match, not a stalemate (reason=%s)", reason)
	}
}

func TestRunMatch_DeterministicForSeed(t *testing.T) {
	a := runMatch(1, 77, 5000, 3, false)
	b := runMatch(1, 77, 5000, 3, false)
	if a.ticksPlayed != b.ticksPlayed || a.match != b.match || a.winner != b.winner {
		t.Fatalf("same seed gave different runs: %+v vs %+v", a.match, b.match)
	}
	if a.match.Threshold != 3 {
		t.Fatalf("expected first_to=3, got %d", a.match.Threshold)
	}
	if a.finished && a.match.Outcome == game.OutcomeInProgress {
		t.Fatal("finished run reported in progress")
	}
}

func TestFirstTick(t *testing.T) {
	entries := []game.SimLogEntry{
		{Tick: 4, Category: "ball", Key: "wall"},
		{Tick: 9, Category: "score", Key: "point", Value: "0-1 rally=0"},
		{Tick: 12, Category: "score", Key: "point", Value: "1-1 rally=2"},
	}
	if got := firstTick(entries, "score", "point", ""); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
	if got := firstTick(entries, "score", "point", "1-1"); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	if got := firstTick(entries, "match", "over", ""); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}
