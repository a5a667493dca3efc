// Package audio plays the game's cues through the system speaker. Every cue
// is synthesised on demand, so there are no sound files to go missing.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/ping-pong/internal/game"
)

// Config controls cue playback.
type Config struct {
	Enabled    bool
	Volume     float64 // linear, 0..1
	SampleRate int
}

// DefaultConfig returns audible cues at 44.1kHz.
func DefaultConfig() Config {
	return Config{Enabled: true, Volume: 0.6, SampleRate: 44100}
}

// Player mixes cue sounds into one speaker stream. It satisfies
// game.CueNotifier; a Player that never initialised stays silent.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer opens the speaker. A disabled config returns a silent player
// without touching the audio device.
func NewPlayer(cfg Config) (*Player, error) {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	p := &Player{cfg: cfg, mixer: &beep.Mixer{}}
	if !cfg.Enabled {
		return p, nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return p, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// Notify queues the cue's sound. It never blocks on playback.
func (p *Player) Notify(c game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := CueStreamer(c, p.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Active reports whether cues reach the speaker.
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Close stops all cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
