// Package texture loads background images for the anime theme and fits
// them to a viewport. It is GL-free; backends upload the result.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Load decodes an image file into RGBA. TGA is detected by extension; every
// other format goes through image.Decode (PNG, JPEG, GIF, BMP, WebP).
func Load(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading background: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err := DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return ToRGBA(img), nil
}

// ToRGBA converts any image to *image.RGBA with its origin at (0,0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Rect, img, b.Min, draw.Src)
	return out
}

// Cover scales src to fill a width x height viewport, preserving aspect
// ratio and cropping the overflow around the center.
func Cover(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	sb := src.Bounds()
	if sb.Empty() {
		return dst
	}

	sw, sh := float64(sb.Dx()), float64(sb.Dy())
	scale := max(float64(dst.Rect.Dx())/sw, float64(dst.Rect.Dy())/sh)

	// Source window that maps onto the whole destination.
	cw := int(float64(dst.Rect.Dx())/scale + 0.5)
	ch := int(float64(dst.Rect.Dy())/scale + 0.5)
	cw, ch = min(max(cw, 1), sb.Dx()), min(max(ch, 1), sb.Dy())
	x0 := sb.Min.X + (sb.Dx()-cw)/2
	y0 := sb.Min.Y + (sb.Dy()-ch)/2

	draw.CatmullRom.Scale(dst, dst.Rect, src, image.Rect(x0, y0, x0+cw, y0+ch), draw.Src, nil)
	return dst
}
