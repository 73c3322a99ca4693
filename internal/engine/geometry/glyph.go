package geometry

import (
	"github.com/Faultbox/dogemark/pkg/math"
)

// DefaultDepth is the extrusion depth used when none is configured.
const DefaultDepth float32 = 0.22

// BlockSpec is one stroke of a glyph: center offset from the glyph origin
// plus face size. Extrusion depth is applied at build time.
type BlockSpec struct {
	X, Y          float32
	Width, Height float32
}

// glyphTable is the authoritative letterform catalog. Strokes touch at
// shared y bands (0.4, 0, -0.4) so each letter reads as one shape.
var glyphTable = map[rune][]BlockSpec{
	'D': {
		{X: -0.35, Y: 0, Width: 0.2, Height: 1.0},
		{X: -0.20, Y: 0.4, Width: 0.75, Height: 0.2},
		{X: -0.20, Y: -0.4, Width: 0.75, Height: 0.2},
		{X: 0.25, Y: 0, Width: 0.2, Height: 1.0},
	},
	'O': {
		{X: -0.4, Y: 0, Width: 0.2, Height: 1.0},
		{X: 0.4, Y: 0, Width: 0.2, Height: 1.0},
		{X: 0, Y: 0.4, Width: 0.85, Height: 0.2},
		{X: 0, Y: -0.4, Width: 0.85, Height: 0.2},
	},
	'G': {
		{X: -0.35, Y: 0, Width: 0.2, Height: 1.0},
		{X: 0, Y: 0.4, Width: 0.9, Height: 0.2},
		{X: 0, Y: -0.4, Width: 0.75, Height: 0.2},
		{X: 0.25, Y: 0, Width: 0.5, Height: 0.2},
		{X: 0.40, Y: -0.225, Width: 0.2, Height: 0.55},
	},
	'E': {
		{X: -0.3, Y: 0, Width: 0.20, Height: 1.0},
		{X: 0.10, Y: 0.40, Width: 0.80, Height: 0.20},
		{X: 0.05, Y: 0, Width: 0.60, Height: 0.20},
		{X: 0.10, Y: -0.40, Width: 0.80, Height: 0.20},
	},
}

// Glyphs returns the supported glyph identities in catalog order.
func Glyphs() []rune {
	return []rune{'D', 'O', 'G', 'E'}
}

// HasGlyph reports whether g is in the catalog.
func HasGlyph(g rune) bool {
	_, ok := glyphTable[g]
	return ok
}

// BlockCount returns the number of blocks in glyph g, or 0 if unknown.
func BlockCount(g rune) int {
	return len(glyphTable[g])
}

// Blocks returns the glyph's blocks placed at centerX and extruded by depth.
// Unknown glyphs yield nil.
func Blocks(g rune, centerX, depth float32) []Block {
	specs, ok := glyphTable[g]
	if !ok {
		return nil
	}

	blocks := make([]Block, len(specs))
	for i, s := range specs {
		blocks[i] = Block{
			Center: math.Vec3{X: centerX + s.X, Y: s.Y, Z: 0},
			Width:  s.Width,
			Height: s.Height,
			Depth:  depth,
		}
	}
	return blocks
}

// Build triangulates glyph g centered at centerX. Indices are rebased so
// they start at vertexOffset; pass nextOffset as the next call's offset.
// An unknown glyph produces no geometry and returns vertexOffset unchanged.
func Build(g rune, centerX float32, vertexOffset int, depth float32) (vertices []float32, indices []uint32, nextOffset int) {
	blocks := Blocks(g, centerX, depth)
	if len(blocks) == 0 {
		return nil, nil, vertexOffset
	}

	vertices = make([]float32, 0, len(blocks)*VerticesPerBlock*3)
	indices = make([]uint32, 0, len(blocks)*IndicesPerBlock)

	offset := vertexOffset
	for _, b := range blocks {
		vertices, indices = b.AppendTo(vertices, indices, offset)
		offset += VerticesPerBlock
	}
	return vertices, indices, offset
}
