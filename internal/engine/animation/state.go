package animation

import (
	"time"

	"github.com/Faultbox/dogemark/internal/appearance"
	"github.com/Faultbox/dogemark/internal/engine/geometry"
)

// Parameter ranges exposed by the controls.
const (
	MinSpeed float64 = 0.1
	MaxSpeed float64 = 3.0
	MinDepth float32 = 0.05
	MaxDepth float32 = 0.6
)

// State is every user-tweakable parameter plus the playback clock.
// Transitions return a new State; the receiver is never modified.
type State struct {
	Clock   Clock
	Speed   float64
	Color   appearance.Color
	Theme   appearance.Theme
	Text    string
	Gap     float32
	Depth   float32
	Compose ComposeMode
	Bounce  bool
}

// DefaultState returns the stock wordmark parameters, paused at zero.
func DefaultState(now time.Time) State {
	return State{
		Clock: NewClock(now),
		Speed: 1.0,
		Color: appearance.DefaultColor,
		Theme: appearance.ThemeDark,
		Text:  geometry.DefaultText,
		Gap:   geometry.DefaultGap,
		Depth: geometry.DefaultDepth,
	}
}

func (s State) Play(now time.Time) State {
	s.Clock = s.Clock.Play(now)
	return s
}

func (s State) Pause(now time.Time) State {
	s.Clock = s.Clock.Pause(now)
	return s
}

func (s State) Toggle(now time.Time) State {
	s.Clock = s.Clock.Toggle(now)
	return s
}

func (s State) Reset(now time.Time) State {
	s.Clock = s.Clock.Reset(now)
	return s
}

// WithSpeed sets the speed multiplier, clamped to [MinSpeed, MaxSpeed].
func (s State) WithSpeed(speed float64) State {
	s.Speed = min(max(speed, MinSpeed), MaxSpeed)
	return s
}

// WithDepth sets the extrusion depth, clamped to [MinDepth, MaxDepth].
func (s State) WithDepth(depth float32) State {
	s.Depth = min(max(depth, MinDepth), MaxDepth)
	return s
}

func (s State) WithColor(c appearance.Color) State {
	c[3] = 1
	s.Color = c
	return s
}

func (s State) WithTheme(t appearance.Theme) State {
	s.Theme = t
	return s
}

func (s State) WithCompose(m ComposeMode) State {
	s.Compose = m
	return s
}

func (s State) WithBounce(on bool) State {
	s.Bounce = on
	return s
}

// WithWord replaces the laid-out text and gap.
func (s State) WithWord(text string, gap float32) State {
	s.Text = text
	s.Gap = gap
	return s
}

// Curve returns the curve configured by this state.
func (s State) Curve() Curve {
	return Curve{Compose: s.Compose, Bounce: s.Bounce}
}

// Pose evaluates the curve at now.
func (s State) Pose(now time.Time) Pose {
	return s.Curve().Evaluate(s.Clock.Seconds(now), s.Speed)
}

// Frame is the pose to draw at now. Before the first
// play it is the still InitialTransform.
func (s State) Frame(now time.Time) Pose {
	if !s.Clock.Started() {
		return Pose{Phase: PhaseSpinUp, Scale: 1, Transform: InitialTransform()}
	}
	return s.Pose(now)
}

// Mesh lays out the state's word.
func (s State) Mesh() geometry.Mesh {
	return geometry.Layout(s.Text, s.Gap, s.Depth)
}

// GeometryChanged reports whether moving from prev to next requires a
// mesh rebuild.
func GeometryChanged(prev, next State) bool {
	return prev.Text != next.Text || prev.Gap != next.Gap || prev.Depth != next.Depth
}
