package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// tgaHeader builds an 18-byte header for a true-color image.
func tgaHeader(kind byte, w, h int, bpp byte, topDown bool) []byte {
	hdr := make([]byte, tgaHeaderSize)
	hdr[2] = kind
	hdr[12], hdr[13] = byte(w), byte(w>>8)
	hdr[14], hdr[15] = byte(h), byte(h>>8)
	hdr[16] = bpp
	if topDown {
		hdr[17] = 0x20
	}
	return hdr
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// 2x2, 24-bit, bottom-up: the first row in the file is the bottom one.
	data := append(tgaHeader(tgaTrueColor, 2, 2, 24, false),
		0, 0, 255, 0, 255, 0, // bottom row: red, green
		255, 0, 0, 255, 255, 255, // top row: blue, white
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, color.RGBA{0, 0, 255, 255}},
		{1, 0, color.RGBA{255, 255, 255, 255}},
		{0, 1, color.RGBA{255, 0, 0, 255}},
		{1, 1, color.RGBA{0, 255, 0, 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 3x1 top-down 32-bit: a run of two red pixels, then one raw blue.
	data := append(tgaHeader(tgaTrueColorRLE, 3, 1, 32, true),
		0x81, 0, 0, 255, 128,
		0x00, 255, 0, 0, 255,
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	want := []color.RGBA{{255, 0, 0, 128}, {255, 0, 0, 128}, {0, 0, 255, 255}}
	for x, w := range want {
		if got := img.RGBAAt(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short", []byte{0, 0, 2}},
		{"color mapped", func() []byte { h := tgaHeader(tgaTrueColor, 1, 1, 24, false); h[1] = 1; return h }()},
		{"grayscale", tgaHeader(3, 1, 1, 8, false)},
		{"16 bit", tgaHeader(tgaTrueColor, 1, 1, 16, false)},
		{"truncated", append(tgaHeader(tgaTrueColor, 2, 2, 24, false), 1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	src.Set(3, 1, color.NRGBA{10, 20, 30, 255})
	pngPath := filepath.Join(dir, "bg.png")
	f, err := os.Create(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(pngPath)
	if err != nil {
		t.Fatalf("Load png: %v", err)
	}
	if img.Rect != image.Rect(0, 0, 4, 2) {
		t.Errorf("bounds = %v", img.Rect)
	}
	if got := img.RGBAAt(3, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("pixel = %v", got)
	}

	tgaPath := filepath.Join(dir, "bg.TGA")
	data := append(tgaHeader(tgaTrueColor, 1, 1, 24, true), 1, 2, 3)
	if err := os.WriteFile(tgaPath, data, 0644); err != nil {
		t.Fatal(err)
	}
	if img, err := Load(tgaPath); err != nil || img.RGBAAt(0, 0) != (color.RGBA{3, 2, 1, 255}) {
		t.Errorf("Load tga = %v, %v", img, err)
	}

	if _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
	junk := filepath.Join(dir, "junk.png")
	os.WriteFile(junk, []byte("not an image"), 0644)
	if _, err := Load(junk); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestCover(t *testing.T) {
	// Left half red, right half blue, 4:1. Fitting into a square keeps
	// only the center, which straddles both halves.
	src := image.NewRGBA(image.Rect(0, 0, 40, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 40; x++ {
			c := color.RGBA{255, 0, 0, 255}
			if x >= 20 {
				c = color.RGBA{0, 0, 255, 255}
			}
			src.SetRGBA(x, y, c)
		}
	}

	dst := Cover(src, 20, 20)
	if dst.Rect != image.Rect(0, 0, 20, 20) {
		t.Fatalf("bounds = %v", dst.Rect)
	}
	if got := dst.RGBAAt(1, 10); got.R < 200 || got.B > 50 {
		t.Errorf("left edge = %v, want red", got)
	}
	if got := dst.RGBAAt(18, 10); got.B < 200 || got.R > 50 {
		t.Errorf("right edge = %v, want blue", got)
	}
}

func TestCoverEmpty(t *testing.T) {
	dst := Cover(image.NewRGBA(image.Rectangle{}), 8, 4)
	if dst.Rect.Dx() != 8 || dst.Rect.Dy() != 4 {
		t.Errorf("bounds = %v", dst.Rect)
	}
}

func TestToRGBA(t *testing.T) {
	src := image.NewGray(image.Rect(2, 3, 5, 7))
	src.SetGray(2, 3, color.Gray{Y: 200})
	out := ToRGBA(src)
	if out.Rect != image.Rect(0, 0, 3, 4) {
		t.Errorf("bounds = %v", out.Rect)
	}
	if got := out.RGBAAt(0, 0); got != (color.RGBA{200, 200, 200, 255}) {
		t.Errorf("pixel = %v", got)
	}
}
