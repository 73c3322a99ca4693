// Package scene ties the animation state to a drawing backend. It owns the
// current mesh and rebuilds it only when a geometry parameter changes.
package scene

import (
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/dogemark/internal/appearance"
	"github.com/Faultbox/dogemark/internal/engine/animation"
	"github.com/Faultbox/dogemark/internal/engine/geometry"
	"github.com/Faultbox/dogemark/internal/logger"
	"github.com/Faultbox/dogemark/pkg/math"
)

// Backend draws the wordmark. The GL renderer and the software rasterizer
// both implement it.
type Backend interface {
	// UploadMesh replaces the drawn geometry. On error the previously
	// uploaded mesh stays in place.
	UploadMesh(m *geometry.Mesh) error
	// Render clears the target and draws the mesh with the given
	// model-view transform in one flat color.
	Render(modelView math.Mat4, color appearance.Color)
	Resize(width, height int)
	SetClearColor(c appearance.Color)
	// SetBackdrop draws img, fitted to the viewport, in place of the clear
	// color. nil removes it.
	SetBackdrop(img *image.RGBA)
}

// Scene manages the wordmark on one backend.
type Scene struct {
	backend  Backend
	state    animation.State
	uploaded animation.State // geometry fields of the mesh on the backend
	mesh     geometry.Mesh
	hasMesh  bool

	backdrop *image.RGBA // anime theme background, optional
	shown    *image.RGBA // backdrop currently set on the backend
}

// New builds the initial mesh for s and uploads it.
func New(b Backend, s animation.State) (*Scene, error) {
	sc := &Scene{backend: b, state: s}
	if err := sc.rebuild(); err != nil {
		return nil, err
	}
	return sc, nil
}

// State returns the current animation state.
func (sc *Scene) State() animation.State {
	return sc.state
}

// Mesh returns the last successfully uploaded mesh.
func (sc *Scene) Mesh() *geometry.Mesh {
	return &sc.mesh
}

// Apply replaces the state. When text, gap or depth changed the mesh is
// rebuilt and uploaded before Apply returns, so the next Draw never sees
// stale geometry. An upload failure keeps the previous mesh and is
// retried on the next Apply.
func (sc *Scene) Apply(next animation.State) error {
	sc.state = next
	if sc.hasMesh && !animation.GeometryChanged(sc.uploaded, next) {
		return nil
	}
	return sc.rebuild()
}

// Update applies a state transition function.
func (sc *Scene) Update(fn func(animation.State) animation.State) error {
	return sc.Apply(fn(sc.state))
}

func (sc *Scene) rebuild() error {
	s := sc.state

	if unknown := geometry.UnknownGlyphs(s.Text); len(unknown) > 0 {
		logger.Warn("text contains glyphs without geometry",
			zap.String("text", s.Text),
			zap.String("unknown", string(unknown)),
		)
	}

	mesh := s.Mesh()
	if err := sc.backend.UploadMesh(&mesh); err != nil {
		logger.Error("mesh upload failed", zap.Float32("depth", s.Depth), zap.Error(err))
		return err
	}

	sc.mesh = mesh
	sc.uploaded = s
	sc.hasMesh = true
	logger.Debug("mesh rebuilt",
		zap.String("text", s.Text),
		zap.Float32("depth", s.Depth),
		zap.Int("vertices", mesh.VertexCount()),
	)
	return nil
}

// Resize forwards a viewport change to the backend.
func (sc *Scene) Resize(width, height int) {
	sc.backend.Resize(width, height)
}

// SetBackdrop sets the image shown behind the wordmark while the anime
// theme is active. nil falls back to the theme's clear color.
func (sc *Scene) SetBackdrop(img *image.RGBA) {
	sc.backdrop = img
}

// Draw renders one frame at now and returns the pose it drew.
func (sc *Scene) Draw(now time.Time) animation.Pose {
	pose := sc.state.Frame(now)
	sc.backend.SetClearColor(sc.state.Theme.Background())

	var bg *image.RGBA
	if sc.state.Theme == appearance.ThemeAnime {
		bg = sc.backdrop
	}
	if bg != sc.shown {
		sc.backend.SetBackdrop(bg)
		sc.shown = bg
	}

	sc.backend.Render(pose.Transform, sc.state.Color)
	return pose
}
