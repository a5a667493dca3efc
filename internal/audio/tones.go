package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/Garsondee/ping-pong/internal/game"
)

// Cue timings.
const (
	wallDuration   = 60 * time.Millisecond
	paddleDuration = 45 * time.Millisecond
	scoreNote1     = 90 * time.Millisecond
	scoreNote2     = 140 * time.Millisecond
	toneAttack     = 4 * time.Millisecond
	toneRelease    = 30 * time.Millisecond
)

// squareTone is a hard-edged oscillator for the paddle click. beep's
// generators only cover smooth waves in the version we use.
type squareTone struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
}

func (o *squareTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := -1.0
		if o.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *squareTone) Err() error { return nil }

// envelope fades a finite stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		streamer: beep.Take(total, s),
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silence.
// math.Log2(0) is -Inf, so silence goes through the Silent flag.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func sine(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		// Only a frequency above Nyquist fails; fall back to silence.
		return beep.Silence(rate.N(d))
	}
	return newEnvelope(s, d, toneAttack, toneRelease, rate)
}

// CueStreamer synthesises the sound for one cue. It returns nil for an
// unknown cue.
func CueStreamer(c game.Cue, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	var s beep.Streamer
	switch c {
	case game.CueWallBounce:
		s = newVolume(sine(rate, 440, wallDuration), 0.5)
	case game.CuePaddleHit:
		sq := &squareTone{freq: 660, rate: rate}
		s = newVolume(newEnvelope(sq, paddleDuration, toneAttack, toneRelease, rate), 0.35)
	case game.CueScore:
		s = beep.Seq(
			sine(rate, 523.25, scoreNote1), // C5
			sine(rate, 783.99, scoreNote2), // G5
		)
	default:
		return nil
	}
	return newVolume(s, cfg.Volume)
}

// CueLength returns how many samples a cue plays for.
func CueLength(c game.Cue, cfg Config) int {
	rate := beep.SampleRate(cfg.SampleRate)
	switch c {
	case game.CueWallBounce:
		return rate.N(wallDuration)
	case game.CuePaddleHit:
		return rate.N(paddleDuration)
	case game.CueScore:
		return rate.N(scoreNote1) + rate.N(scoreNote2)
	default:
		return 0
	}
}
