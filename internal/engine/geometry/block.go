// Package geometry builds the extruded block-letter wordmark mesh.
//
// Every glyph is a fixed list of axis-aligned boxes. Boxes never share
// vertices and are not merged, so a glyph with N blocks always yields
// 8N vertices and 36N indices.
package geometry

import (
	"github.com/Faultbox/dogemark/pkg/math"
)

const (
	// VerticesPerBlock is the corner count of one box.
	VerticesPerBlock = 8
	// IndicesPerBlock is 12 triangles, two per face.
	IndicesPerBlock = 36
)

// blockIndices is the per-box triangle template before rebasing. Local
// corners are ordered (-x+y+z, -x-y+z, +x-y+z, +x+y+z, -x+y-z, -x-y-z,
// +x+y-z, +x-y-z). Front, right and top wind counter-clockwise seen from
// outside; back, left and bottom wind the other way. Renderers therefore
// draw with depth testing only and never enable face culling.
var blockIndices = [IndicesPerBlock]uint32{
	0, 1, 2, 0, 2, 3, // front (+z)
	4, 5, 7, 4, 7, 6, // back (-z)
	3, 2, 7, 3, 7, 6, // right (+x)
	0, 1, 5, 0, 5, 4, // left (-x)
	0, 3, 6, 0, 6, 4, // top (+y)
	1, 2, 7, 1, 7, 5, // bottom (-y)
}

// Block is an axis-aligned rectangular prism.
type Block struct {
	Center math.Vec3
	Width  float32
	Height float32
	Depth  float32
}

// Corners returns the 8 corner positions in template order.
func (b Block) Corners() [VerticesPerBlock][3]float32 {
	hw, hh, hd := b.Width/2, b.Height/2, b.Depth/2
	x, y, z := b.Center.X, b.Center.Y, b.Center.Z

	return [VerticesPerBlock][3]float32{
		{x - hw, y + hh, z + hd},
		{x - hw, y - hh, z + hd},
		{x + hw, y - hh, z + hd},
		{x + hw, y + hh, z + hd},
		{x - hw, y + hh, z - hd},
		{x - hw, y - hh, z - hd},
		{x + hw, y + hh, z - hd},
		{x + hw, y - hh, z - hd},
	}
}

// AppendTo appends the block's flattened vertices and its indices rebased
// by offset. offset is the number of vertices already in the buffer.
func (b Block) AppendTo(vertices []float32, indices []uint32, offset int) ([]float32, []uint32) {
	for _, c := range b.Corners() {
		vertices = append(vertices, c[0], c[1], c[2])
	}
	base := uint32(offset)
	for _, i := range blockIndices {
		indices = append(indices, i+base)
	}
	return vertices, indices
}
