// Package renderer draws the wordmark mesh with OpenGL 4.1 core.
package renderer

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/dogemark/internal/appearance"
	"github.com/Faultbox/dogemark/internal/engine/camera"
	"github.com/Faultbox/dogemark/internal/engine/geometry"
	"github.com/Faultbox/dogemark/internal/engine/scene"
	"github.com/Faultbox/dogemark/internal/engine/shader"
	"github.com/Faultbox/dogemark/internal/engine/texture"
	"github.com/Faultbox/dogemark/internal/logger"
	"github.com/Faultbox/dogemark/pkg/math"
)

// ErrUnsupported is returned when no usable OpenGL context is available.
var ErrUnsupported = errors.New("renderer: OpenGL 4.1 unsupported")

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	camera *camera.Perspective
	clear  appearance.Color

	program    uint32
	locMV      int32
	locProj    int32
	locColor   int32
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	// anime theme background
	bgProgram uint32
	bgVAO     uint32
	bgTexture uint32
	backdrop  *image.RGBA
}

var _ scene.Backend = (*Renderer)(nil)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		camera: camera.NewPerspective(cfg.Width, cfg.Height),
		clear:  appearance.ThemeDark.Background(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Depth test only. Back, left and bottom faces wind clockwise seen from
	// outside, so culling would drop them.
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE)

	program, err := shader.CompileProgram(shader.WordmarkVertex, shader.WordmarkFragment)
	if err != nil {
		return nil, fmt.Errorf("creating wordmark program: %w", err)
	}
	r.program = program
	locs, err := shader.LookupUniforms(program, shader.UniformModelView, shader.UniformProjection, shader.UniformColor)
	if err != nil {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("wordmark program: %w", err)
	}
	r.locMV, r.locProj, r.locColor = locs[0], locs[1], locs[2]

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	bgProgram, err := shader.CompileProgram(shader.BackdropVertex, shader.BackdropFragment)
	if err != nil {
		return nil, fmt.Errorf("creating backdrop program: %w", err)
	}
	r.bgProgram = bgProgram
	bgLocs, err := shader.LookupUniforms(bgProgram, shader.UniformBackdrop)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("backdrop program: %w", err)
	}
	gl.UseProgram(bgProgram)
	gl.Uniform1i(bgLocs[0], 0)
	gl.UseProgram(0)
	gl.GenVertexArrays(1, &r.bgVAO)

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	logger.Debug("wordmark program created", zap.Uint32("program", program))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.deleteBackdrop()
	if r.bgVAO != 0 {
		gl.DeleteVertexArrays(1, &r.bgVAO)
	}
	if r.bgProgram != 0 {
		gl.DeleteProgram(r.bgProgram)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// UploadMesh replaces the vertex and index buffers. Indices are sent as
// 16-bit; a mesh over 65536 vertices is rejected before any GL call.
func (r *Renderer) UploadMesh(m *geometry.Mesh) error {
	idx, err := m.Indices16()
	if err != nil {
		return err
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	if len(m.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}
	if len(idx) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idx)*2, unsafe.Pointer(&idx[0]), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}
	gl.BindVertexArray(0)

	r.indexCount = int32(len(idx))
	logger.Debug("mesh uploaded",
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
	)
	return nil
}

// SetClearColor sets the background for subsequent frames.
func (r *Renderer) SetClearColor(c appearance.Color) {
	r.clear = c
}

// SetBackdrop uploads img, fitted to the viewport, as the background.
func (r *Renderer) SetBackdrop(img *image.RGBA) {
	r.backdrop = img
	r.uploadBackdrop()
}

func (r *Renderer) uploadBackdrop() {
	if r.backdrop == nil {
		r.deleteBackdrop()
		return
	}

	fitted := texture.Cover(r.backdrop, r.config.Width, r.config.Height)
	w, h := int32(fitted.Rect.Dx()), int32(fitted.Rect.Dy())

	if r.bgTexture == 0 {
		gl.GenTextures(1, &r.bgTexture)
	}
	gl.BindTexture(gl.TEXTURE_2D, r.bgTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(fitted.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	logger.Debug("backdrop uploaded", zap.Int32("width", w), zap.Int32("height", h))
}

func (r *Renderer) deleteBackdrop() {
	if r.bgTexture != 0 {
		gl.DeleteTextures(1, &r.bgTexture)
		r.bgTexture = 0
	}
}

// Render clears the bound framebuffer and draws the uploaded mesh.
func (r *Renderer) Render(modelView math.Mat4, color appearance.Color) {
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.bgTexture != 0 {
		gl.Disable(gl.DEPTH_TEST)
		gl.UseProgram(r.bgProgram)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.bgTexture)
		gl.BindVertexArray(r.bgVAO)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
		gl.BindVertexArray(0)
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}

	if r.indexCount == 0 {
		return
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locMV, 1, false, modelView.Ptr())
	proj := r.camera.ProjectionMatrix()
	gl.UniformMatrix4fv(r.locProj, 1, false, proj.Ptr())
	gl.Uniform4fv(r.locColor, 1, color.Ptr())

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.camera.SetViewport(width, height)
	gl.Viewport(0, 0, int32(width), int32(height))
	if r.backdrop != nil {
		r.uploadBackdrop()
	}
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// ReadPixels reads the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() []byte {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}
