package geometry

// Advance is the horizontal space given to every glyph before the gap.
// It is a fixed value, not measured from the blocks.
const Advance float32 = 0.75

// DefaultGap is the inter-glyph gap of the stock wordmark.
const DefaultGap float32 = 0.35

// DefaultText is the stock wordmark.
const DefaultText = "DOGE"

// TotalWidth returns the laid-out width of n glyphs separated by gap.
func TotalWidth(n int, gap float32) float32 {
	if n <= 0 {
		return 0
	}
	return float32(n)*Advance + gap*float32(n-1)
}

// Layout builds word left to right, centered on the world origin.
// Glyphs missing from the catalog still take up their advance but add no
// geometry; see UnknownGlyphs.
func Layout(word string, gap, depth float32) Mesh {
	glyphs := []rune(word)

	var mesh Mesh
	cursor := -TotalWidth(len(glyphs), gap) / 2
	offset := 0

	for _, g := range glyphs {
		verts, inds, next := Build(g, cursor+Advance/2, offset, depth)
		mesh.Vertices = append(mesh.Vertices, verts...)
		mesh.Indices = append(mesh.Indices, inds...)

		cursor += Advance + gap
		offset = next
	}

	mesh.computeBounds()
	return mesh
}

// TotalBlocks returns the block count of every known glyph in word.
func TotalBlocks(word string) int {
	n := 0
	for _, g := range word {
		n += BlockCount(g)
	}
	return n
}

// UnknownGlyphs returns the distinct glyphs of word that are not in the
// catalog, in first-seen order.
func UnknownGlyphs(word string) []rune {
	var unknown []rune
	seen := make(map[rune]bool)
	for _, g := range word {
		if HasGlyph(g) || seen[g] {
			continue
		}
		seen[g] = true
		unknown = append(unknown, g)
	}
	return unknown
}
