package geometry

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/Faultbox/dogemark/pkg/math"
)

func TestBuildOffsetsAndIndexRange(t *testing.T) {
	offsets := []int{0, 8, 40, 1000}

	for _, g := range Glyphs() {
		for _, o := range offsets {
			verts, inds, next := Build(g, 0.3, o, DefaultDepth)
			n := BlockCount(g)

			if next != o+VerticesPerBlock*n {
				t.Errorf("%c offset %d: nextOffset = %d, want %d", g, o, next, o+VerticesPerBlock*n)
			}
			if len(verts) != n*VerticesPerBlock*3 {
				t.Errorf("%c: got %d floats, want %d", g, len(verts), n*VerticesPerBlock*3)
			}
			if len(inds) != n*IndicesPerBlock {
				t.Errorf("%c: got %d indices, want %d", g, len(inds), n*IndicesPerBlock)
			}
			for _, idx := range inds {
				if int(idx) < o || int(idx) >= next {
					t.Fatalf("%c offset %d: index %d outside [%d, %d)", g, o, idx, o, next)
				}
			}
		}
	}
}

func TestBuildUnknownGlyph(t *testing.T) {
	verts, inds, next := Build('X', 0, 24, DefaultDepth)
	if verts != nil || inds != nil {
		t.Errorf("unknown glyph should produce no geometry, got %d floats, %d indices", len(verts), len(inds))
	}
	if next != 24 {
		t.Errorf("unknown glyph should not advance the offset, got %d", next)
	}
	if BlockCount('X') != 0 {
		t.Error("unknown glyph should have no blocks")
	}
}

func TestBlockCounts(t *testing.T) {
	want := map[rune]int{'D': 4, 'O': 4, 'G': 5, 'E': 4}
	for g, n := range want {
		if got := BlockCount(g); got != n {
			t.Errorf("BlockCount(%c) = %d, want %d", g, got, n)
		}
	}
}

func TestBlockTemplate(t *testing.T) {
	b := Block{Center: math.Vec3{X: 1, Y: 2, Z: 0}, Width: 2, Height: 2, Depth: 2}
	_, inds := b.AppendTo(nil, nil, 16)

	want := []uint32{
		0, 1, 2, 0, 2, 3,
		4, 5, 7, 4, 7, 6,
		3, 2, 7, 3, 7, 6,
		0, 1, 5, 0, 5, 4,
		0, 3, 6, 0, 6, 4,
		1, 2, 7, 1, 7, 5,
	}
	for i := range want {
		want[i] += 16
	}
	if !reflect.DeepEqual(inds, want) {
		t.Errorf("template mismatch:\ngot  %v\nwant %v", inds, want)
	}
}

func TestBlockFaceOrientation(t *testing.T) {
	b := Block{Center: math.Vec3{}, Width: 2, Height: 2, Depth: 2}
	corners := b.Corners()

	faces := []struct {
		name    string
		outward bool
	}{
		{"front", true},
		{"back", false},
		{"right", true},
		{"left", false},
		{"top", true},
		{"bottom", false},
	}

	for f, face := range faces {
		for tri := 0; tri < 2; tri++ {
			base := f*6 + tri*3
			a := vec(corners[blockIndices[base]])
			bb := vec(corners[blockIndices[base+1]])
			c := vec(corners[blockIndices[base+2]])

			normal := bb.Sub(a).Cross(c.Sub(a))
			centroid := math.Vec3{
				X: (a.X + bb.X + c.X) / 3,
				Y: (a.Y + bb.Y + c.Y) / 3,
				Z: (a.Z + bb.Z + c.Z) / 3,
			}
			out := normal.Dot(centroid) > 0
			if out != face.outward {
				t.Errorf("%s triangle %d: outward = %v, want %v", face.name, tri, out, face.outward)
			}
		}
	}
}

func TestBlockCorners(t *testing.T) {
	b := Block{Center: math.Vec3{X: 1, Y: 0, Z: 0}, Width: 0.2, Height: 1.0, Depth: 0.22}
	c := b.Corners()

	if !near(c[0][0], 0.9) || !near(c[0][1], 0.5) || !near(c[0][2], 0.11) {
		t.Errorf("corner 0 = %v, want (0.9, 0.5, 0.11)", c[0])
	}
	if !near(c[7][0], 1.1) || !near(c[7][1], -0.5) || !near(c[7][2], -0.11) {
		t.Errorf("corner 7 = %v, want (1.1, -0.5, -0.11)", c[7])
	}
}

func TestLayoutCounts(t *testing.T) {
	m := Layout("DOGE", 0.35, DefaultDepth)
	blocks := BlockCount('D') + BlockCount('O') + BlockCount('G') + BlockCount('E')

	if m.VertexCount() != VerticesPerBlock*blocks {
		t.Errorf("vertex count = %d, want %d", m.VertexCount(), VerticesPerBlock*blocks)
	}
	if len(m.Indices) != IndicesPerBlock*blocks {
		t.Errorf("index count = %d, want %d", len(m.Indices), IndicesPerBlock*blocks)
	}
	if TotalBlocks("DOGE") != blocks {
		t.Errorf("TotalBlocks = %d, want %d", TotalBlocks("DOGE"), blocks)
	}
}

func TestLayoutIdempotent(t *testing.T) {
	a := Layout("DOGE", 0.35, DefaultDepth)
	b := Layout("DOGE", 0.35, DefaultDepth)

	if !reflect.DeepEqual(a.Vertices, b.Vertices) {
		t.Error("vertices differ between identical layouts")
	}
	if !reflect.DeepEqual(a.Indices, b.Indices) {
		t.Error("indices differ between identical layouts")
	}
}

func TestLayoutCentered(t *testing.T) {
	tests := []struct {
		word string
		gap  float32
	}{
		{"DOGE", 0.35},
		{"OO", 0.35},
		{"DOD", 0.1},
		{"EGGE", 0},
		{"O", 0.35},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			m := Layout(tt.word, tt.gap, DefaultDepth)

			// Glyph origins are symmetric regardless of letterforms.
			first := -TotalWidth(len(tt.word), tt.gap)/2 + Advance/2
			last := first + float32(len(tt.word)-1)*(Advance+tt.gap)
			if !near(first+last, 0) {
				t.Errorf("glyph centers not symmetric: first %f last %f", first, last)
			}
			block := glyphTable[rune(tt.word[0])][0]
			if want := first + block.X - block.Width/2; !near(m.Vertices[0], want) {
				t.Errorf("first vertex x = %f, want %f", m.Vertices[0], want)
			}
			if mirrorWord(tt.word) && !symmetric(m.Bounds.Min[0], m.Bounds.Max[0]) {
				t.Errorf("mirror word %q bounds not symmetric: %v", tt.word, m.Bounds)
			}
		})
	}
}

func TestLayoutDOGEExtent(t *testing.T) {
	m := Layout("DOGE", 0.35, DefaultDepth)

	// D sits at -1.65; its bars reach 0.575 left of that.
	if !near(m.Bounds.Min[0], -2.225) {
		t.Errorf("min x = %f, want -2.225", m.Bounds.Min[0])
	}
	// E's top bar: center 1.65 + 0.10, half width 0.4.
	if !near(m.Bounds.Max[0], 2.15) {
		t.Errorf("max x = %f, want 2.15", m.Bounds.Max[0])
	}
	if !near(m.Bounds.Min[2], -0.11) || !near(m.Bounds.Max[2], 0.11) {
		t.Errorf("z extent = [%f, %f], want [-0.11, 0.11]", m.Bounds.Min[2], m.Bounds.Max[2])
	}
}

func TestLayoutNoCrossGlyphIndices(t *testing.T) {
	m := Layout("DOGE", 0.35, DefaultDepth)

	start := 0
	for _, g := range "DOGE" {
		n := BlockCount(g) * IndicesPerBlock
		lo := uint32(start / IndicesPerBlock * VerticesPerBlock)
		hi := lo + uint32(BlockCount(g)*VerticesPerBlock)
		for _, idx := range m.Indices[start : start+n] {
			if idx < lo || idx >= hi {
				t.Fatalf("glyph %c index %d escapes its range [%d, %d)", g, idx, lo, hi)
			}
		}
		start += n
	}
	if start != len(m.Indices) {
		t.Errorf("consumed %d indices, mesh has %d", start, len(m.Indices))
	}
}

func TestLayoutUnknownGlyphKeepsAdvance(t *testing.T) {
	m := Layout("DXE", 0.35, DefaultDepth)
	if m.VertexCount() != (BlockCount('D')+BlockCount('E'))*VerticesPerBlock {
		t.Errorf("vertex count = %d", m.VertexCount())
	}
	// E still lands in the third slot, right of center.
	eStem := m.Vertex(BlockCount('D') * VerticesPerBlock)
	if want := Advance + 0.35 - 0.3 - 0.1; !near(eStem[0], want) {
		t.Errorf("E stem x = %f, want %f", eStem[0], want)
	}
	if got := UnknownGlyphs("DXEXz"); !reflect.DeepEqual(got, []rune{'X', 'z'}) {
		t.Errorf("UnknownGlyphs = %q, want [X z]", got)
	}
	if got := UnknownGlyphs("DOGE"); got != nil {
		t.Errorf("UnknownGlyphs(DOGE) = %q, want none", got)
	}
}

func TestLayoutDepth(t *testing.T) {
	m := Layout("D", 0, 0.5)
	if !near(m.Bounds.Max[2], 0.25) || !near(m.Bounds.Min[2], -0.25) {
		t.Errorf("depth 0.5 z extent = [%f, %f]", m.Bounds.Min[2], m.Bounds.Max[2])
	}
}

func TestLayoutEmpty(t *testing.T) {
	m := Layout("", 0.35, DefaultDepth)
	if m.VertexCount() != 0 || len(m.Indices) != 0 {
		t.Error("empty word should produce an empty mesh")
	}
	if TotalWidth(0, 0.35) != 0 {
		t.Error("empty word should have zero width")
	}
}

func TestIndices16(t *testing.T) {
	m := Layout("DOGE", 0.35, DefaultDepth)
	idx, err := m.Indices16()
	if err != nil {
		t.Fatalf("Indices16: %v", err)
	}
	for i := range idx {
		if uint32(idx[i]) != m.Indices[i] {
			t.Fatalf("index %d: got %d, want %d", i, idx[i], m.Indices[i])
		}
	}

	big := Mesh{Vertices: make([]float32, (MaxVertices16+8)*3)}
	if _, err := big.Indices16(); err == nil {
		t.Error("expected error for mesh past 16-bit range")
	}
}

func TestWriteOBJ(t *testing.T) {
	m := Layout("DOGE", 0.35, DefaultDepth)
	dir := t.TempDir()

	for _, name := range []string{"doge.obj", "doge.obj.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := WriteOBJ(path, &m, "doge"); err != nil {
				t.Fatalf("WriteOBJ: %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()

			var scanner *bufio.Scanner
			if strings.HasSuffix(name, ".zst") {
				dec, err := zstd.NewReader(f)
				if err != nil {
					t.Fatalf("zstd reader: %v", err)
				}
				defer dec.Close()
				scanner = bufio.NewScanner(dec)
			} else {
				scanner = bufio.NewScanner(f)
			}

			var v, faces, groups int
			for scanner.Scan() {
				line := scanner.Text()
				switch {
				case strings.HasPrefix(line, "v "):
					v++
				case strings.HasPrefix(line, "f "):
					faces++
				case strings.HasPrefix(line, "g "):
					groups++
				}
			}
			if v != m.VertexCount() {
				t.Errorf("vertices = %d, want %d", v, m.VertexCount())
			}
			if faces != m.TriangleCount() {
				t.Errorf("faces = %d, want %d", faces, m.TriangleCount())
			}
			if groups != TotalBlocks("DOGE") {
				t.Errorf("groups = %d, want %d", groups, TotalBlocks("DOGE"))
			}
		})
	}
}

type failingCloser struct {
	strings.Builder
	closed bool
}

func (f *failingCloser) Close() error {
	f.closed = true
	return errors.New("disk quota exceeded")
}

func TestWriteOBJReportsCloseError(t *testing.T) {
	m := Layout("DOGE", 0.35, DefaultDepth)

	for _, compress := range []bool{false, true} {
		w := &failingCloser{}
		err := writeOBJ(w, compress, &m, "doge")
		if err == nil || !strings.Contains(err.Error(), "disk quota exceeded") {
			t.Errorf("compress=%v: err = %v, want the close error", compress, err)
		}
		if !w.closed {
			t.Errorf("compress=%v: writer not closed", compress)
		}
		if w.Len() == 0 {
			t.Errorf("compress=%v: nothing written before close", compress)
		}
	}
}

func vec(p [3]float32) math.Vec3 {
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func symmetric(minX, maxX float32) bool {
	return near(minX+maxX, 0)
}

// mirrorWord reports words whose letterforms are mirror symmetric as a
// whole, so their bounds must also be symmetric.
func mirrorWord(w string) bool {
	return w == "OO" || w == "O"
}
