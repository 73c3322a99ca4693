package geometry

import (
	"fmt"
)

// MaxVertices16 is the largest vertex count addressable with 16-bit indices.
const MaxVertices16 = 1 << 16

// Mesh holds the complete wordmark geometry ready for GPU upload.
type Mesh struct {
	Vertices []float32 // x, y, z per vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i int) [3]float32 {
	return [3]float32{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
}

// Indices16 converts the index buffer for UNSIGNED_SHORT draws.
func (m *Mesh) Indices16() ([]uint16, error) {
	if n := m.VertexCount(); n > MaxVertices16 {
		return nil, fmt.Errorf("mesh has %d vertices, 16-bit indices address at most %d", n, MaxVertices16)
	}
	out := make([]uint16, len(m.Indices))
	for i, idx := range m.Indices {
		out[i] = uint16(idx)
	}
	return out, nil
}

// computeBounds recalculates Bounds from the vertex buffer.
func (m *Mesh) computeBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return
	}

	m.Bounds = Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for i := 0; i < len(m.Vertices); i += 3 {
		for axis := 0; axis < 3; axis++ {
			v := m.Vertices[i+axis]
			if v < m.Bounds.Min[axis] {
				m.Bounds.Min[axis] = v
			}
			if v > m.Bounds.Max[axis] {
				m.Bounds.Max[axis] = v
			}
		}
	}
}
