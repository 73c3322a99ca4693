// Package raster is a headless software backend for the wordmark. It fills
// projected triangles back to front (painter's algorithm) into an RGBA
// image, so frames can be produced without a GL context.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	gomath "math"
	"sort"

	"golang.org/x/image/vector"

	"github.com/Faultbox/dogemark/internal/appearance"
	"github.com/Faultbox/dogemark/internal/engine/camera"
	"github.com/Faultbox/dogemark/internal/engine/geometry"
	"github.com/Faultbox/dogemark/internal/engine/scene"
	"github.com/Faultbox/dogemark/internal/engine/texture"
	"github.com/Faultbox/dogemark/pkg/math"
)

// Renderer rasterizes the mesh on the CPU.
type Renderer struct {
	camera *camera.Perspective
	img    *image.RGBA
	clear  appearance.Color
	z      vector.Rasterizer

	backdrop *image.RGBA
	fitted   *image.RGBA // backdrop scaled to the canvas

	vertices []float32
	indices  []uint32

	// scratch reused across frames
	tris []triangle
}

var _ scene.Backend = (*Renderer)(nil)

type triangle struct {
	pts   [3][2]float32
	depth float32 // mean view-space z, more negative is farther
}

// New creates a renderer with a width x height canvas.
func New(width, height int) *Renderer {
	r := &Renderer{
		camera: camera.NewPerspective(width, height),
		clear:  appearance.ThemeDark.Background(),
	}
	r.img = image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	return r
}

// UploadMesh copies the mesh. It enforces the same 16-bit index limit as
// the GL renderer so both backends accept the same meshes.
func (r *Renderer) UploadMesh(m *geometry.Mesh) error {
	if _, err := m.Indices16(); err != nil {
		return err
	}
	r.vertices = append(r.vertices[:0], m.Vertices...)
	r.indices = append(r.indices[:0], m.Indices...)
	return nil
}

func (r *Renderer) SetClearColor(c appearance.Color) {
	r.clear = c
}

// SetBackdrop replaces the clear color with img, scaled to cover the canvas.
func (r *Renderer) SetBackdrop(img *image.RGBA) {
	r.backdrop = img
	r.fitted = nil
	if img != nil {
		r.fitted = texture.Cover(img, r.img.Rect.Dx(), r.img.Rect.Dy())
	}
}

// Resize reallocates the canvas.
func (r *Renderer) Resize(width, height int) {
	r.camera.SetViewport(width, height)
	r.img = image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	if r.backdrop != nil {
		r.fitted = texture.Cover(r.backdrop, r.img.Rect.Dx(), r.img.Rect.Dy())
	}
}

// Image returns the canvas. It is overwritten by the next Render.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Render clears the canvas and fills every visible triangle.
func (r *Renderer) Render(modelView math.Mat4, col appearance.Color) {
	if r.fitted != nil {
		draw.Draw(r.img, r.img.Bounds(), r.fitted, image.Point{}, draw.Src)
	} else {
		draw.Draw(r.img, r.img.Bounds(), image.NewUniform(toRGBA(r.clear)), image.Point{}, draw.Src)
	}

	r.tris = r.project(modelView, r.tris[:0])
	sort.SliceStable(r.tris, func(i, j int) bool {
		return r.tris[i].depth < r.tris[j].depth
	})

	src := image.NewUniform(toRGBA(col))
	for i := range r.tris {
		r.fill(&r.tris[i], src)
	}
}

// project transforms and projects every triangle. Triangles with a vertex
// behind the near plane are dropped; the wordmark never gets that close.
func (r *Renderer) project(mv math.Mat4, out []triangle) []triangle {
	nv := len(r.vertices) / 3
	view := make([][3]float32, nv)
	for i := range view {
		view[i] = mv.TransformPoint([3]float32{r.vertices[i*3], r.vertices[i*3+1], r.vertices[i*3+2]})
	}

	for i := 0; i+2 < len(r.indices); i += 3 {
		var t triangle
		ok := true
		for k := 0; k < 3; k++ {
			p := view[r.indices[i+k]]
			x, y, vis := r.camera.Project(p)
			if !vis {
				ok = false
				break
			}
			t.pts[k] = [2]float32{x, y}
			t.depth += p[2] / 3
		}
		if ok {
			out = append(out, t)
		}
	}
	return out
}

// fill rasterizes one triangle inside its pixel bounding box.
func (r *Renderer) fill(t *triangle, src image.Image) {
	minX, minY := float32(gomath.Inf(1)), float32(gomath.Inf(1))
	maxX, maxY := float32(gomath.Inf(-1)), float32(gomath.Inf(-1))
	for _, p := range t.pts {
		minX, maxX = min(minX, p[0]), max(maxX, p[0])
		minY, maxY = min(minY, p[1]), max(maxY, p[1])
	}

	box := image.Rect(
		int(gomath.Floor(float64(minX))), int(gomath.Floor(float64(minY))),
		int(gomath.Ceil(float64(maxX))), int(gomath.Ceil(float64(maxY))),
	).Intersect(r.img.Bounds())
	if box.Empty() {
		return
	}

	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	r.z.Reset(box.Dx(), box.Dy())
	r.z.DrawOp = draw.Over
	r.z.MoveTo(t.pts[0][0]-ox, t.pts[0][1]-oy)
	r.z.LineTo(t.pts[1][0]-ox, t.pts[1][1]-oy)
	r.z.LineTo(t.pts[2][0]-ox, t.pts[2][1]-oy)
	r.z.ClosePath()
	r.z.Draw(r.img, box, src, image.Point{})
}

func toRGBA(c appearance.Color) color.RGBA {
	ch := func(v float32) uint8 {
		return uint8(min(max(v, 0), 1)*255 + 0.5)
	}
	return color.RGBA{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: 255}
}
