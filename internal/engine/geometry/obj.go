package geometry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// EncodeOBJ writes the mesh as a Wavefront OBJ document. OBJ indices are
// 1-based; each block is emitted as its own group.
func EncodeOBJ(w io.Writer, m *Mesh, name string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %s: %d vertices, %d triangles\n", name, m.VertexCount(), m.TriangleCount())
	fmt.Fprintf(bw, "o %s\n", name)

	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v[0], v[1], v[2])
	}

	for i := 0; i < len(m.Indices); i += 3 {
		if i%IndicesPerBlock == 0 {
			fmt.Fprintf(bw, "g block%d\n", i/IndicesPerBlock)
		}
		fmt.Fprintf(bw, "f %d %d %d\n", m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1)
	}

	return bw.Flush()
}

// WriteOBJ saves the mesh to path. Paths ending in ".zst" are
// zstd-compressed.
func WriteOBJ(path string, m *Mesh, name string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	return writeOBJ(f, strings.HasSuffix(path, ".zst"), m, name)
}

// writeOBJ encodes into w and closes it. A failed close is reported.
func writeOBJ(w io.WriteCloser, compress bool, m *Mesh, name string) error {
	err := encodeOBJ(w, compress, m, name)
	if cerr := w.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing file: %w", cerr)
	}
	return err
}

func encodeOBJ(w io.Writer, compress bool, m *Mesh, name string) error {
	if !compress {
		return EncodeOBJ(w, m, name)
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	if err := EncodeOBJ(enc, m, name); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
