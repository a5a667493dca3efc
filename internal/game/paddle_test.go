package game

import "testing"

// --- Move ---

func TestPaddleMove_StartsCentred(t *testing.T) {
	p := NewPaddle(30, 20, 100, 6, 600)
	if p.Y != 250 {
		t.Fatalf("expected y=250 (600/2 - 100/2), got %.1f", p.Y)
	}
}

func TestPaddleMove_Step(t *testing.T) {
	p := NewPaddle(30, 20, 100, 6, 600)
	p.Move(IntentUp)
	if p.Y != 244 {
		t.Fatalf("expected y=244 after one step up, got %.1f", p.Y)
	}
	p.Move(IntentDown)
	p.Move(IntentDown)
	if p.Y != 256 {
		t.Fatalf("expected y=256 after two steps down, got %.1f", p.Y)
	}
	p.Move(IntentNone)
	if p.Y != 256 {
		t.Fatalf("IntentNone should not move the paddle, got %.1f", p.Y)
	}
}

func TestPaddleMove_NeverLeavesScreen(t *testing.T) {
	p := NewPaddle(30, 20, 100, 6, 600)
	for i := 0; i < 200; i++ {
		p.Move(IntentUp)
		if p.Y < 0 || p.Y > 500 {
			t.Fatalf("step %d: y=%.1f outside [0,500]", i, p.Y)
		}
	}
	if p.Y != 0 {
		t.Fatalf("expected paddle pinned at top, got %.1f", p.Y)
	}
	for i := 0; i < 200; i++ {
		p.Move(IntentDown)
		if p.Y < 0 || p.Y > 500 {
			t.Fatalf("step %d: y=%.1f outside [0,500]", i, p.Y)
		}
	}
	if p.Y != 500 {
		t.Fatalf("expected paddle pinned at bottom, got %.1f", p.Y)
	}
}

// --- Tracking ---

func TestPaddleTrackIntent_Deadzone(t *testing.T) {
	p := NewPaddle(770, 20, 100, 6, 600) // centre at 300
	cases := []struct {
		ballY float64
		want  Intent
	}{
		{300, IntentNone},
		{290, IntentNone}, // exactly on the deadzone edge
		{310, IntentNone},
		{289.5, IntentUp},
		{310.5, IntentDown},
		{0, IntentUp},
		{600, IntentDown},
	}
	for _, tc := range cases {
		if got := p.TrackIntent(tc.ballY); got != tc.want {
			t.Errorf("ball centre %.1f: expected %s, got %s", tc.ballY, tc.want, got)
		}
	}
}

func TestPaddleAutoTrack_MovesOneStep(t *testing.T) {
	p := NewPaddle(770, 20, 100, 6, 600)
	p.AutoTrack(100)
	if p.Y != 244 {
		t.Fatalf("expected one step up to 244, got %.1f", p.Y)
	}
	p.AutoTrack(p.Y + p.Height/2 + 5)
	if p.Y != 244 {
		t.Fatalf("ball inside deadzone should not move paddle, got %.1f", p.Y)
	}
	p.AutoTrack(590)
	if p.Y != 250 {
		t.Fatalf("expected one step down to 250, got %.1f", p.Y)
	}
}

func TestPaddleBounds(t *testing.T) {
	p := NewPaddle(30, 20, 100, 6, 600)
	b := p.Bounds()
	if b != (Rect{X: 30, Y: 250, W: 20, H: 100}) {
		t.Fatalf("unexpected bounds %+v", b)
	}
	if b.Right() != 50 || b.Bottom() != 350 || b.CenterY() != 300 {
		t.Fatalf("unexpected edges right=%.0f bottom=%.0f centre=%.0f", b.Right(), b.Bottom(), b.CenterY())
	}
}

func TestRectOverlaps_TouchingEdgesDoNotOverlap(t *testing.T) {
	a := Rect{X: 30, Y: 250, W: 20, H: 100}
	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"flush right", Rect{X: 50, Y: 290, W: 20, H: 20}, false},
		{"one unit in", Rect{X: 49, Y: 290, W: 20, H: 20}, true},
		{"flush above", Rect{X: 35, Y: 230, W: 20, H: 20}, false},
		{"corner overlap", Rect{X: 45, Y: 345, W: 20, H: 20}, true},
		{"far away", Rect{X: 400, Y: 300, W: 20, H: 20}, false},
	}
	for _, tc := range cases {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
		if got := tc.b.Overlaps(a); got != tc.want {
			t.Errorf("%s (reversed): expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
