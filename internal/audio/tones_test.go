package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/Garsondee/ping-pong/internal/game"
)

// drain pulls every sample out of s and returns the count and peak level.
func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		got, ok := s.Stream(buf)
		for i := 0; i < got; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		n += got
		if !ok || got == 0 {
			return n, peak
		}
	}
}

func TestCueStreamer_Lengths(t *testing.T) {
	cfg := DefaultConfig()
	for _, c := range game.AllCues() {
		s := CueStreamer(c, cfg)
		if s == nil {
			t.Fatalf("no sound for %s", c)
		}
		n, peak := drain(s)
		if want := CueLength(c, cfg); n != want {
			t.Fatalf("%s: expected %d samples, got %d", c, want, n)
		}
		if peak == 0 || peak > 1 {
			t.Fatalf("%s: peak level %.3f out of range", c, peak)
		}
	}
}

func TestCueStreamer_ZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Volume = 0
	n, peak := drain(CueStreamer(game.CuePaddleHit, cfg))
	if n == 0 {
		t.Fatal("silent cue should still run its full length")
	}
	if peak != 0 {
		t.Fatalf("expected silence, got peak %.3f", peak)
	}
}

func TestCueStreamer_UnknownCue(t *testing.T) {
	if s := CueStreamer(game.Cue(99), DefaultConfig()); s != nil {
		t.Fatal("unknown cue should have no sound")
	}
}

func TestEnvelope_StartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := newEnvelope(&squareTone{freq: 100, rate: rate}, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)
	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Fatalf("first sample should be silent, got %.3f", buf[0][0])
	}
	if math.Abs(buf[50][0]) != 1 {
		t.Fatalf("mid sample should be full level, got %.3f", buf[50][0])
	}
	if math.Abs(buf[99][0]) > 0.11 {
		t.Fatalf("last sample should be nearly silent, got %.3f", buf[99][0])
	}
}

func TestPlayer_DisabledIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	p, err := NewPlayer(cfg)
	if err != nil {
		t.Fatalf("disabled player should not fail: %v", err)
	}
	if p.Active() {
		t.Fatal("disabled player must not open the speaker")
	}
	var n game.CueNotifier = p
	n.Notify(game.CueScore)
	p.Close()
}
