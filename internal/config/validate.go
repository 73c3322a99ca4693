package config

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/Faultbox/dogemark/internal/appearance"
	"github.com/Faultbox/dogemark/internal/engine/animation"
	"github.com/Faultbox/dogemark/internal/engine/geometry"
	"github.com/Faultbox/dogemark/internal/engine/texture"
	"github.com/Faultbox/dogemark/internal/logger"
)

// Validate clamps numeric settings into their control ranges and rejects
// values that cannot be interpreted. Unknown glyphs in the text are not an
// error; they lay out as empty cells.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}

	c.Wordmark.Text = strings.ToUpper(c.Wordmark.Text)
	if c.Wordmark.Gap < 0 {
		errs = append(errs, fmt.Errorf("wordmark: negative gap %v", c.Wordmark.Gap))
	}
	c.Wordmark.Depth = min(max(c.Wordmark.Depth, animation.MinDepth), animation.MaxDepth)

	c.Animation.Speed = min(max(c.Animation.Speed, animation.MinSpeed), animation.MaxSpeed)
	if _, ok := animation.ParseComposeMode(c.Animation.Compose); !ok {
		errs = append(errs, fmt.Errorf("animation: unknown compose mode %q", c.Animation.Compose))
	}

	if _, err := appearance.ParseColor(c.Appearance.Color); err != nil {
		errs = append(errs, fmt.Errorf("appearance: %w", err))
	}
	if _, err := appearance.ParseTheme(c.Appearance.Theme); err != nil {
		errs = append(errs, fmt.Errorf("appearance: %w", err))
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}

// State builds the initial animation state. Call Validate first; invalid
// color, theme or compose values fall back to their defaults.
func (c *Config) State(now time.Time) animation.State {
	s := c.ApplyTo(animation.DefaultState(now))
	if c.Animation.Autoplay {
		s = s.Play(now)
	}
	return s
}

// ApplyTo overlays the configured parameters onto s, leaving its clock
// untouched. Used for hot reloads.
func (c *Config) ApplyTo(s animation.State) animation.State {
	s = s.WithWord(c.Wordmark.Text, c.Wordmark.Gap).
		WithDepth(c.Wordmark.Depth).
		WithSpeed(c.Animation.Speed).
		WithBounce(c.Animation.Bounce)

	if m, ok := animation.ParseComposeMode(c.Animation.Compose); ok {
		s = s.WithCompose(m)
	}
	if col, err := appearance.ParseColor(c.Appearance.Color); err == nil {
		s = s.WithColor(col)
	}
	if th, err := appearance.ParseTheme(c.Appearance.Theme); err == nil {
		s = s.WithTheme(th)
	}
	return s
}

// CaptureState copies the tweakable parameters of s back into the config
// so Save persists what the user dialed in.
func (c *Config) CaptureState(s animation.State) {
	c.Wordmark.Text = s.Text
	c.Wordmark.Gap = s.Gap
	c.Wordmark.Depth = s.Depth
	c.Animation.Speed = s.Speed
	c.Animation.Compose = s.Compose.String()
	c.Animation.Bounce = s.Bounce
	c.Appearance.Color = s.Color.Hex()
	c.Appearance.Theme = string(s.Theme)
}

// UnknownGlyphs lists characters in the configured text that have no
// glyph.
func (c *Config) UnknownGlyphs() []rune {
	return geometry.UnknownGlyphs(c.Wordmark.Text)
}

// Backdrop loads the anime theme background image. It returns nil without
// error when none is configured.
func (c *Config) Backdrop() (*image.RGBA, error) {
	if c.Appearance.Background == "" {
		return nil, nil
	}
	return texture.Load(c.Appearance.Background)
}
