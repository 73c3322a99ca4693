package raster

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/dogemark/internal/appearance"
)

const hudSize = 14

var (
	hudOnce sync.Once
	hudFace font.Face
	hudErr  error
)

func face() (font.Face, error) {
	hudOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			hudErr = err
			return
		}
		hudFace, hudErr = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    hudSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return hudFace, hudErr
}

// Label draws lines of text in the top-left corner of the canvas, one per
// row. Call it after Render.
func (r *Renderer) Label(c appearance.Color, lines ...string) error {
	f, err := face()
	if err != nil {
		return err
	}

	lineHeight := f.Metrics().Height
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(toRGBA(c)),
		Face: f,
	}

	y := fixed.I(8) + f.Metrics().Ascent
	for _, line := range lines {
		d.Dot = fixed.Point26_6{X: fixed.I(8), Y: y}
		d.DrawString(line)
		y += lineHeight
	}
	return nil
}
