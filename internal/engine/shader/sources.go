package shader

import _ "embed"

// WordmarkVertex transforms block vertices by uModelView then uProj.
//
//go:embed wordmark.vert
var WordmarkVertex string

// WordmarkFragment fills every fragment with uColor.
//
//go:embed wordmark.frag
var WordmarkFragment string

// BackdropVertex covers the viewport with one triangle.
//
//go:embed backdrop.vert
var BackdropVertex string

// BackdropFragment samples uBackdrop. Row 0 of the uploaded image is the
// top of the screen.
//
//go:embed backdrop.frag
var BackdropFragment string

// Uniform names shared by the wordmark program and its callers.
const (
	UniformModelView  = "uModelView"
	UniformProjection = "uProj"
	UniformColor      = "uColor"
	UniformBackdrop   = "uBackdrop"
)
