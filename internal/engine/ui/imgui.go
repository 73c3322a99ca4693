// Package ui wraps the ImGui SDL backend used by the studio.
package ui

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/dogemark/internal/appearance"
	"github.com/Faultbox/dogemark/internal/logger"
)

// latinGlyphRanges covers Basic Latin, Latin-1 and General Punctuation.
// Pairs of [start, end], zero terminated.
var latinGlyphRanges = []imgui.Wchar{
	0x0020, 0x00FF,
	0x2000, 0x206F,
	0,
}

// fontPaths are tried in order; the ImGui default font is used when none
// exists.
var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	"C:\\Windows\\Fonts\\segoeui.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// FontSize is the UI font size in pixels.
const FontSize = 16

// Backend owns the ImGui context and the studio window.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the ImGui context and opens the window. bg is the
// window clear color behind the panels.
func NewBackend(title string, width, height int, bg appearance.Color) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(loadFont)
	b.backend.SetBgColor(imgui.NewVec4(bg[0], bg[1], bg[2], 1.0))
	b.backend.CreateWindow(title, width, height)
	return b, nil
}

func loadFont() {
	path := FindFont(fontPaths)
	if path == "" {
		logger.Debug("no UI font found, using ImGui default")
		return
	}

	fontCfg := imgui.NewFontConfig()
	defer fontCfg.Destroy()
	imgui.CurrentIO().Fonts().AddFontFromFileTTFV(path, FontSize, fontCfg, &latinGlyphRanges[0])
}

// FindFont returns the first existing path in candidates, or "".
func FindFont(candidates []string) string {
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Run starts the render loop. It returns when the window closes.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// Viewport returns the main viewport work area.
func Viewport() (pos, size imgui.Vec2) {
	vp := imgui.MainViewport()
	return vp.WorkPos(), vp.WorkSize()
}

// KeyPressed reports a key press this frame, ignoring it while a widget
// is being edited.
func KeyPressed(key imgui.Key) bool {
	return !imgui.IsAnyItemActive() && imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
