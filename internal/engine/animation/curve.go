// Package animation drives the wordmark's rigid-body motion.
//
// The curve is a pure function of scaled elapsed time; all mutable
// playback state lives in the Clock and State values.
package animation

import (
	gomath "math"

	"github.com/Faultbox/dogemark/pkg/math"
)

// Phase identifies one time window of the curve.
type Phase int

const (
	PhaseSpinUp Phase = iota + 1
	PhaseSettle
	PhaseTumble
)

func (p Phase) String() string {
	switch p {
	case PhaseSpinUp:
		return "spin-up"
	case PhaseSettle:
		return "settle"
	case PhaseTumble:
		return "tumble"
	default:
		return "unknown"
	}
}

// Phase boundaries in scaled seconds.
const (
	SettleStart = 4.0
	TumbleStart = 6.0
)

// CameraDistance is the fixed model-view translation along -Z.
const CameraDistance float32 = 7

// ComposeMode selects how the two rotation angles enter the matrix.
type ComposeMode int

const (
	// ComposeOverwrite writes the Y rotation cells and then the X rotation
	// cells into one identity, so m10 ends up as cos(rotX). This is not a
	// real rotation product; it reproduces the classic wordmark tumble.
	ComposeOverwrite ComposeMode = iota
	// ComposeProduct multiplies a Y rotation by an X rotation.
	ComposeProduct
)

// ParseComposeMode maps a config string to a ComposeMode.
func ParseComposeMode(s string) (ComposeMode, bool) {
	switch s {
	case "", "overwrite":
		return ComposeOverwrite, true
	case "product":
		return ComposeProduct, true
	default:
		return ComposeOverwrite, false
	}
}

func (m ComposeMode) String() string {
	if m == ComposeProduct {
		return "product"
	}
	return "overwrite"
}

// Pose is the evaluated curve at one instant.
type Pose struct {
	Time      float64 // scaled seconds
	Phase     Phase
	RotX      float64
	RotY      float64
	Scale     float64
	BounceY   float64 // only meaningful in PhaseTumble
	Transform math.Mat4
}

// Curve evaluates the three-phase wordmark animation.
type Curve struct {
	Compose ComposeMode
	// Bounce feeds BounceY into the Y translation during the tumble.
	Bounce bool
}

// Evaluate returns the pose after elapsed seconds of playback at speed.
// Negative times clamp to zero.
func (c Curve) Evaluate(elapsed, speed float64) Pose {
	t := elapsed * speed
	if t < 0 {
		t = 0
	}

	p := Pose{Time: t, Scale: 1}

	switch {
	case t < SettleStart:
		p.Phase = PhaseSpinUp
		p.RotY = gomath.Sin(t*gomath.Pi/2) * gomath.Pi

	case t < TumbleStart:
		// Rotation stays at zero for the whole window; only scale eases in.
		p.Phase = PhaseSettle
		p.Scale = 1 + 0.5*Smoothstep((t-SettleStart)/2)

	default:
		p.Phase = PhaseTumble
		v := t - 5
		p.RotX = v * gomath.Pi * 0.7
		p.BounceY = gomath.Abs(gomath.Sin(v*gomath.Pi))*1.2 - 0.6
		p.Scale = 1.5 + gomath.Cos(v*3)*0.2
		p.RotY = gomath.Sin(v*1.5) * 0.3
	}

	p.Transform = c.assemble(p)
	return p
}

func (c Curve) assemble(p Pose) math.Mat4 {
	var m math.Mat4

	if c.Compose == ComposeProduct {
		// The cell layout below yaws opposite to RotateY, hence the negation.
		m = math.RotateY(float32(-p.RotY)).Mul(math.RotateX(float32(p.RotX)))
	} else {
		cy, sy := float32(gomath.Cos(p.RotY)), float32(gomath.Sin(p.RotY))
		cx, sx := float32(gomath.Cos(p.RotX)), float32(gomath.Sin(p.RotX))

		m = math.Identity()
		m[0] = cy
		m[2] = sy
		m[8] = -sy
		m[10] = cy

		m[5] = cx
		m[6] = sx
		m[9] = -sx
		m[10] = cx
	}

	m[14] = -CameraDistance
	if c.Bounce && p.Phase == PhaseTumble {
		m[13] = float32(p.BounceY)
	}

	m.ScaleDiagonal(float32(p.Scale))
	return m
}

// Smoothstep is the cubic Hermite ease u²(3-2u), clamped to [0,1].
func Smoothstep(u float64) float64 {
	if u <= 0 {
		return 0
	}
	if u >= 1 {
		return 1
	}
	return u * u * (3 - 2*u)
}

// InitialTransform is the still pose shown before playback starts: a 20°
// yaw at camera distance.
func InitialTransform() math.Mat4 {
	ang := 20 * gomath.Pi / 180
	c, s := float32(gomath.Cos(ang)), float32(gomath.Sin(ang))

	m := math.Identity()
	m[0] = c
	m[2] = s
	m[8] = -s
	m[10] = c
	m[14] = -CameraDistance
	return m
}
