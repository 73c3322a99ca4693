package animation

import "time"

// Clock is the playback clock. It is a value: every transition returns a
// new Clock and never mutates the receiver.
type Clock struct {
	playing     bool
	started     bool
	start       time.Time
	accumulated time.Duration
}

// NewClock returns a paused clock at zero elapsed time.
func NewClock(now time.Time) Clock {
	return Clock{start: now}
}

// Playing reports whether time is advancing.
func (c Clock) Playing() bool {
	return c.playing
}

// Play resumes from the accumulated elapsed time. No-op when playing.
func (c Clock) Play(now time.Time) Clock {
	if c.playing {
		return c
	}
	c.playing = true
	c.started = true
	c.start = now.Add(-c.accumulated)
	return c
}

// Pause freezes elapsed time. No-op when paused.
func (c Clock) Pause(now time.Time) Clock {
	if !c.playing {
		return c
	}
	c.playing = false
	c.accumulated = now.Sub(c.start)
	return c
}

// Toggle flips between Play and Pause.
func (c Clock) Toggle(now time.Time) Clock {
	if c.playing {
		return c.Pause(now)
	}
	return c.Play(now)
}

// Reset rewinds to zero and starts playing regardless of prior state.
func (c Clock) Reset(now time.Time) Clock {
	return Clock{playing: true, started: true, start: now}
}

// Started reports whether the clock has ever played.
func (c Clock) Started() bool {
	return c.started
}

// Elapsed returns the unscaled playback time.
func (c Clock) Elapsed(now time.Time) time.Duration {
	if !c.playing {
		return c.accumulated
	}
	return now.Sub(c.start)
}

// Seconds returns Elapsed in seconds.
func (c Clock) Seconds(now time.Time) float64 {
	return c.Elapsed(now).Seconds()
}
