package config

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/dogemark/internal/appearance"
	"github.com/Faultbox/dogemark/internal/engine/animation"
)

func TestValidateClamps(t *testing.T) {
	cfg := Default()
	cfg.Wordmark.Depth = 5
	cfg.Animation.Speed = 0.01
	cfg.Wordmark.Text = "doge"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Wordmark.Depth != animation.MaxDepth {
		t.Errorf("expected depth clamped to %v, got %v", animation.MaxDepth, cfg.Wordmark.Depth)
	}
	if cfg.Animation.Speed != animation.MinSpeed {
		t.Errorf("expected speed clamped to %v, got %v", animation.MinSpeed, cfg.Animation.Speed)
	}
	if cfg.Wordmark.Text != "DOGE" {
		t.Errorf("expected upper-cased text, got %s", cfg.Wordmark.Text)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad color", func(c *Config) { c.Appearance.Color = "cyan" }},
		{"bad theme", func(c *Config) { c.Appearance.Theme = "neon" }},
		{"bad compose", func(c *Config) { c.Animation.Compose = "slerp" }},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad size", func(c *Config) { c.Graphics.Width = 0 }},
		{"negative gap", func(c *Config) { c.Wordmark.Gap = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateAllowsUnknownGlyphs(t *testing.T) {
	cfg := Default()
	cfg.Wordmark.Text = "DOGS"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unknown glyphs should not fail validation: %v", err)
	}
	if got := cfg.UnknownGlyphs(); len(got) != 1 || got[0] != 'S' {
		t.Errorf("expected [S], got %q", got)
	}
}

func TestStateFromConfig(t *testing.T) {
	now := time.Unix(100, 0)
	cfg := Default()
	cfg.Wordmark.Depth = 0.4
	cfg.Animation.Speed = 2
	cfg.Animation.Compose = "product"
	cfg.Appearance.Color = "#ff0000"
	cfg.Appearance.Theme = "blue"

	s := cfg.State(now)
	if s.Clock.Playing() {
		t.Error("state should start paused without autoplay")
	}
	if s.Depth != 0.4 || s.Speed != 2 {
		t.Errorf("unexpected depth/speed %v/%v", s.Depth, s.Speed)
	}
	if s.Compose != animation.ComposeProduct {
		t.Errorf("expected product compose, got %v", s.Compose)
	}
	if s.Color != (appearance.Color{1, 0, 0, 1}) {
		t.Errorf("unexpected color %v", s.Color)
	}
	if s.Theme != appearance.ThemeBlue {
		t.Errorf("unexpected theme %v", s.Theme)
	}

	cfg.Animation.Autoplay = true
	if !cfg.State(now).Clock.Playing() {
		t.Error("autoplay should start the clock")
	}
}

func TestApplyToKeepsClock(t *testing.T) {
	t0 := time.Unix(0, 0)
	s := Default().State(t0).Play(t0)

	cfg := Default()
	cfg.Animation.Speed = 3
	next := cfg.ApplyTo(s)

	if next.Clock != s.Clock {
		t.Error("hot reload must not touch the clock")
	}
	if next.Speed != 3 {
		t.Errorf("expected speed 3, got %v", next.Speed)
	}
}

func TestCaptureStateRoundTrip(t *testing.T) {
	now := time.Unix(0, 0)
	s := Default().State(now).
		WithDepth(0.5).
		WithSpeed(1.5).
		WithTheme(appearance.ThemeLight).
		WithColor(appearance.Color{0, 0, 1, 1})

	cfg := Default()
	cfg.CaptureState(s)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("captured config invalid: %v", err)
	}

	back := cfg.State(now)
	if back.Depth != s.Depth || back.Speed != s.Speed || back.Theme != s.Theme || back.Color != s.Color {
		t.Errorf("round trip mismatch: %+v vs %+v", back, s)
	}
}

func TestBackdrop(t *testing.T) {
	cfg := Default()
	img, err := cfg.Backdrop()
	if img != nil || err != nil {
		t.Errorf("unset background = %v, %v; want nil, nil", img, err)
	}

	dir := t.TempDir()
	cfg.Appearance.Background = filepath.Join(dir, "missing.png")
	if _, err := cfg.Backdrop(); err == nil {
		t.Error("expected error for missing background")
	}

	path := filepath.Join(dir, "bg.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg.Appearance.Background = path
	img, err = cfg.Backdrop()
	if err != nil {
		t.Fatalf("Backdrop: %v", err)
	}
	if img.Rect.Dx() != 3 || img.Rect.Dy() != 2 {
		t.Errorf("backdrop bounds = %v", img.Rect)
	}
}
