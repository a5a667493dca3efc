package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/Garsondee/ping-pong/internal/game"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if c != Default() {
		t.Fatalf("expected defaults, got %+v", c)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
seed = 42
threshold = 7
show_feed = false

[audio]
volume = 0.25
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Seed != 42 || c.Threshold != 7 || c.ShowFeed {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.Audio.Volume != 0.25 || !c.Audio.Enabled {
		t.Fatalf("audio section mis-merged: %+v", c.Audio)
	}
	if c.WindowScale != 1 || c.TUI.RepeatFrames != 8 {
		t.Fatalf("unset keys should keep defaults: %+v", c)
	}
}

func TestLoad_InvalidThreshold(t *testing.T) {
	_, err := Load(writeFile(t, "threshold = 4\n"))
	if !errors.Is(err, game.ErrInvalidThreshold) {
		t.Fatalf("expected ErrInvalidThreshold, got %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	if _, err := Load(writeFile(t, "threshold = \n")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"volume", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"scale", func(c *Config) { c.WindowScale = 0 }},
		{"repeat", func(c *Config) { c.TUI.RepeatFrames = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mut(&c)
			if err := c.Validate(); !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("expected ErrOutOfRange, got %v", err)
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	want := Default()
	want.Seed = 9
	want.Threshold = 3
	want.Audio.Enabled = false
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestFlags_OnlySetFlagsOverride(t *testing.T) {
	path := writeFile(t, "threshold = 7\nseed = 11\n")
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(set)
	if err := set.Parse([]string{"-config", path, "-seed", "99", "-audio=false"}); err != nil {
		t.Fatal(err)
	}
	c, err := f.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if c.Threshold != 7 {
		t.Fatalf("unset flag overrode the file: threshold=%d", c.Threshold)
	}
	if c.Seed != 99 || c.Audio.Enabled {
		t.Fatalf("set flags not applied: %+v", c)
	}
}

func TestEffectiveSeed(t *testing.T) {
	c := Default()
	c.Seed = 5
	if c.EffectiveSeed() != 5 {
		t.Fatal("explicit seed should be kept")
	}
	c.Seed = 0
	if c.EffectiveSeed() == 0 {
		t.Fatal("zero seed should resolve to a time-based one")
	}
}
