package game

import (
	"strings"
	"testing"
)

func TestGradePaddles(t *testing.T) {
	ms := MatchStats{PlayerHits: 9, AIHits: 12, PlayerPoints: 0, AIPoints: 3}
	samples := []RallySample{
		{PlayerLag: 60, AILag: 4},
		{PlayerLag: 80, AILag: 8},
	}
	grades := GradePaddles(ms, samples)
	if len(grades) != 2 || grades[0].Side != SidePlayer || grades[1].Side != SideAI {
		t.Fatalf("expected player then ai, got %+v", grades)
	}

	p, a := grades[0], grades[1]
	if p.ReturnRate != 75 || p.AvgLag != 70 {
		t.Fatalf("player: returns=%.1f lag=%.1f", p.ReturnRate, p.AvgLag)
	}
	if p.Score != 40 || p.Grade != "F" {
		t.Fatalf("player: score=%.1f grade=%s", p.Score, p.Grade)
	}
	if !strings.Contains(strings.Join(p.Traits, ","), "slow_tracking") {
		t.Fatalf("player should be flagged slow, got %v", p.Traits)
	}

	if a.ReturnRate != 100 || a.Score != 97 || a.Grade != "A+" {
		t.Fatalf("ai: returns=%.1f score=%.1f grade=%s", a.ReturnRate, a.Score, a.Grade)
	}
	if len(a.Traits) != 1 || a.Traits[0] != "no_misses" {
		t.Fatalf("ai traits: %v", a.Traits)
	}

	out := FormatGrades(grades)
	if !strings.Contains(out, "A+   ai") || !strings.Contains(out, "misses=3") {
		t.Fatalf("unexpected grade block:\n%s", out)
	}
}

func TestGradePaddles_NoSamples(t *testing.T) {
	grades := GradePaddles(MatchStats{}, nil)
	for _, g := range grades {
		if g.Score != 0 || g.AvgLag != 0 || len(g.Traits) != 0 {
			t.Fatalf("empty match should grade flat, got %+v", g)
		}
	}
}

func TestRunUntil_StopsOnPredicate(t *testing.T) {
	s := NewSimulation(WithSeed(8))
	at := s.RunUntil(func(s *Simulation) bool { return s.RallyHits() > 0 || s.playerScore+s.aiScore > 0 }, 5000)
	if at < 0 {
		t.Fatal("nothing happened in 5000 ticks")
	}
	if at != s.CurrentTick() {
		t.Fatalf("returned tick %d, simulation at %d", at, s.CurrentTick())
	}
}

func TestRunTicks_StopsAtGameOver(t *testing.T) {
	s := NewSimulation(WithSeed(8))
	s.aiScore = DefaultThreshold
	s.gameOver = true
	s.RunTicks(100)
	if s.CurrentTick() != 0 {
		t.Fatalf("finished match advanced to T=%d", s.CurrentTick())
	}
}
