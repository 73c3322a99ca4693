// Package camera provides the fixed perspective camera the wordmark is
// viewed through.
package camera

import (
	gomath "math"

	"github.com/Faultbox/dogemark/pkg/math"
)

// Perspective sits at the origin looking down -Z. The model-view matrix
// produced by the animation already places the wordmark in front of it.
type Perspective struct {
	FovY   float32 // radians
	Near   float32
	Far    float32
	Width  int
	Height int
}

// NewPerspective returns the wordmark camera: 60° vertical field of view,
// near 0.1, far 100.
func NewPerspective(width, height int) *Perspective {
	return &Perspective{
		FovY:   60 * gomath.Pi / 180,
		Near:   0.1,
		Far:    100,
		Width:  width,
		Height: height,
	}
}

// SetViewport updates the viewport after a resize.
func (c *Perspective) SetViewport(width, height int) {
	c.Width = width
	c.Height = height
}

// Aspect returns width/height, or 1 for a degenerate viewport.
func (c *Perspective) Aspect() float32 {
	if c.Width <= 0 || c.Height <= 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

// ProjectionMatrix returns the perspective matrix for the current viewport.
func (c *Perspective) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FovY, c.Aspect(), c.Near, c.Far)
}

// Project maps a view-space point to pixel coordinates with y pointing
// down. ok is false for points at or behind the near plane.
func (c *Perspective) Project(p [3]float32) (x, y float32, ok bool) {
	if -p[2] < c.Near {
		return 0, 0, false
	}
	clip := c.ProjectionMatrix().MulVec4(math.Vec4{p[0], p[1], p[2], 1})
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]

	x = (ndcX + 1) / 2 * float32(c.Width)
	y = (1 - ndcY) / 2 * float32(c.Height)
	return x, y, true
}
