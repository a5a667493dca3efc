// Package config loads session settings from an optional TOML file and lets
// command-line flags override them. Physics is fixed and never configurable.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Garsondee/ping-pong/internal/game"
)

// ErrOutOfRange reports a numeric setting outside its allowed range.
var ErrOutOfRange = errors.New("setting out of range")

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type TUIConfig struct {
	// RepeatFrames is how long a key press keeps the paddle moving when the
	// terminal sends no release event.
	RepeatFrames int `toml:"repeat_frames"`
}

// Config is everything a front end needs besides the simulation itself.
type Config struct {
	Seed        int64       `toml:"seed"` // 0 picks a time-based seed
	Threshold   int         `toml:"threshold"`
	WindowScale float64     `toml:"window_scale"`
	ShowFeed    bool        `toml:"show_feed"`
	VerboseLog  bool        `toml:"verbose_log"`
	Audio       AudioConfig `toml:"audio"`
	TUI         TUIConfig   `toml:"tui"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Threshold:   game.DefaultThreshold,
		WindowScale: 1,
		ShowFeed:    true,
		Audio:       AudioConfig{Enabled: true, Volume: 0.6},
		TUI:         TUIConfig{RepeatFrames: 8},
	}
}

// DefaultPath is $HOME/.config/ping-pong/config.toml.
func DefaultPath() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(h, ".config", "ping-pong", "config.toml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, &c)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		log.Printf("config: ignoring unknown key %q in %s", k.String(), path)
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

func (c Config) Validate() error {
	if !game.ValidThreshold(c.Threshold) {
		return fmt.Errorf("threshold %d: %w", c.Threshold, game.ErrInvalidThreshold)
	}
	if c.WindowScale <= 0 || c.WindowScale > 4 {
		return fmt.Errorf("window_scale %.2f: %w", c.WindowScale, ErrOutOfRange)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %.2f: %w", c.Audio.Volume, ErrOutOfRange)
	}
	if c.TUI.RepeatFrames < 1 {
		return fmt.Errorf("tui.repeat_frames %d: %w", c.TUI.RepeatFrames, ErrOutOfRange)
	}
	return nil
}

// EffectiveSeed resolves a zero seed to the current time.
func (c Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Flags binds the command-line overrides. Only flags the user actually set
// replace file values.
type Flags struct {
	set *flag.FlagSet

	path      string
	seed      int64
	threshold int
	scale     float64
	feed      bool
	audio     bool
	volume    float64
	repeat    int
	verbose   bool
}

func RegisterFlags(set *flag.FlagSet) *Flags {
	d := Default()
	f := &Flags{set: set}
	set.StringVar(&f.path, "config", DefaultPath(), "path to the TOML config file")
	set.Int64Var(&f.seed, "seed", 0, "random seed (0 = time-based)")
	set.IntVar(&f.threshold, "threshold", d.Threshold, "points needed to win (3, 5 or 7)")
	set.Float64Var(&f.scale, "scale", d.WindowScale, "window scale factor")
	set.BoolVar(&f.feed, "feed", d.ShowFeed, "show the event feed panel")
	set.BoolVar(&f.audio, "audio", d.Audio.Enabled, "play sound cues")
	set.Float64Var(&f.volume, "volume", d.Audio.Volume, "cue volume 0..1")
	set.IntVar(&f.repeat, "repeat", d.TUI.RepeatFrames, "terminal key repeat window in frames")
	set.BoolVar(&f.verbose, "verbose", d.VerboseLog, "record per-tick ball positions")
	return f
}

func (f *Flags) Path() string { return f.path }

// Apply copies explicitly set flags into c.
func (f *Flags) Apply(c *Config) {
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			c.Seed = f.seed
		case "threshold":
			c.Threshold = f.threshold
		case "scale":
			c.WindowScale = f.scale
		case "feed":
			c.ShowFeed = f.feed
		case "audio":
			c.Audio.Enabled = f.audio
		case "volume":
			c.Audio.Volume = f.volume
		case "repeat":
			c.TUI.RepeatFrames = f.repeat
		case "verbose":
			c.VerboseLog = f.verbose
		}
	})
}

// Resolve loads the file named by the flags, applies the overrides and
// validates the result.
func (f *Flags) Resolve() (Config, error) {
	c, err := Load(f.path)
	if err != nil {
		return c, err
	}
	f.Apply(&c)
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}
