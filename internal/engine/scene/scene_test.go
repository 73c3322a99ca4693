package scene

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/Faultbox/dogemark/internal/appearance"
	"github.com/Faultbox/dogemark/internal/engine/animation"
	"github.com/Faultbox/dogemark/internal/engine/geometry"
	"github.com/Faultbox/dogemark/pkg/math"
)

type fakeBackend struct {
	uploads   []int // vertex counts
	failNext  bool
	renders   int
	lastMV    math.Mat4
	lastColor appearance.Color
	clear     appearance.Color
	backdrops []*image.RGBA
	w, h      int
}

func (f *fakeBackend) UploadMesh(m *geometry.Mesh) error {
	if f.failNext {
		f.failNext = false
		return errors.New("upload failed")
	}
	f.uploads = append(f.uploads, m.VertexCount())
	return nil
}

func (f *fakeBackend) Render(mv math.Mat4, c appearance.Color) {
	f.renders++
	f.lastMV = mv
	f.lastColor = c
}

func (f *fakeBackend) Resize(w, h int)                  { f.w, f.h = w, h }
func (f *fakeBackend) SetClearColor(c appearance.Color) { f.clear = c }
func (f *fakeBackend) SetBackdrop(img *image.RGBA)      { f.backdrops = append(f.backdrops, img) }

var t0 = time.Unix(0, 0)

func TestNewUploads(t *testing.T) {
	b := &fakeBackend{}
	sc, err := New(b, animation.DefaultState(t0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := geometry.TotalBlocks("DOGE") * geometry.VerticesPerBlock
	if len(b.uploads) != 1 || b.uploads[0] != want {
		t.Errorf("uploads = %v, want [%d]", b.uploads, want)
	}
	if sc.Mesh().VertexCount() != want {
		t.Errorf("scene mesh has %d vertices", sc.Mesh().VertexCount())
	}
}

func TestApplyRebuildsOnlyOnGeometryChange(t *testing.T) {
	b := &fakeBackend{}
	sc, err := New(b, animation.DefaultState(t0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	steps := []struct {
		name    string
		fn      func(animation.State) animation.State
		uploads int
	}{
		{"play", func(s animation.State) animation.State { return s.Play(t0) }, 1},
		{"speed", func(s animation.State) animation.State { return s.WithSpeed(2) }, 1},
		{"color", func(s animation.State) animation.State { return s.WithColor(appearance.Color{1, 0, 0, 1}) }, 1},
		{"theme", func(s animation.State) animation.State { return s.WithTheme(appearance.ThemeLight) }, 1},
		{"depth", func(s animation.State) animation.State { return s.WithDepth(0.4) }, 2},
		{"same depth", func(s animation.State) animation.State { return s.WithDepth(0.4) }, 2},
		{"text", func(s animation.State) animation.State { return s.WithWord("DOG", s.Gap) }, 3},
	}

	for _, st := range steps {
		if err := sc.Update(st.fn); err != nil {
			t.Fatalf("%s: %v", st.name, err)
		}
		if len(b.uploads) != st.uploads {
			t.Errorf("%s: %d uploads, want %d", st.name, len(b.uploads), st.uploads)
		}
	}
}

func TestApplyFailureKeepsPreviousMesh(t *testing.T) {
	b := &fakeBackend{}
	sc, err := New(b, animation.DefaultState(t0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := sc.Mesh().Bounds

	b.failNext = true
	if err := sc.Update(func(s animation.State) animation.State { return s.WithDepth(0.6) }); err == nil {
		t.Fatal("expected upload error")
	}
	if sc.Mesh().Bounds != before {
		t.Error("failed rebuild replaced the mesh")
	}
	if sc.State().Depth != 0.6 {
		t.Error("requested depth should still be recorded")
	}

	// The next change retries the upload.
	if err := sc.Update(func(s animation.State) animation.State { return s.WithSpeed(1.1) }); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if got := sc.Mesh().Bounds.Max[2]; got < 0.29 {
		t.Errorf("retry did not upload depth 0.6 mesh, max z = %f", got)
	}
}

func TestDraw(t *testing.T) {
	b := &fakeBackend{}
	s := animation.DefaultState(t0).WithTheme(appearance.ThemeBlue)
	sc, err := New(b, s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	pose := sc.Draw(t0.Add(time.Second))
	if b.renders != 1 {
		t.Fatalf("renders = %d", b.renders)
	}
	if b.lastMV != animation.InitialTransform() || pose.Transform != b.lastMV {
		t.Error("unstarted scene should draw the initial pose")
	}
	if b.clear != appearance.ThemeBlue.Background() {
		t.Errorf("clear color = %v", b.clear)
	}
	if b.lastColor != appearance.DefaultColor {
		t.Errorf("color = %v", b.lastColor)
	}

	if err := sc.Update(func(s animation.State) animation.State { return s.Play(t0) }); err != nil {
		t.Fatal(err)
	}
	pose = sc.Draw(t0.Add(5 * time.Second))
	if pose.Phase != animation.PhaseSettle {
		t.Errorf("phase at 5s = %v", pose.Phase)
	}
}

func TestResize(t *testing.T) {
	b := &fakeBackend{}
	sc, _ := New(b, animation.DefaultState(t0))
	sc.Resize(640, 480)
	if b.w != 640 || b.h != 480 {
		t.Errorf("backend size = %dx%d", b.w, b.h)
	}
}

func TestBackdropFollowsTheme(t *testing.T) {
	b := &fakeBackend{}
	sc, err := New(b, animation.DefaultState(t0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bg := image.NewRGBA(image.Rect(0, 0, 2, 2))
	sc.SetBackdrop(bg)

	sc.Draw(t0)
	if len(b.backdrops) != 0 {
		t.Fatalf("dark theme set a backdrop: %v", b.backdrops)
	}

	sc.Update(func(s animation.State) animation.State { return s.WithTheme(appearance.ThemeAnime) })
	sc.Draw(t0)
	sc.Draw(t0)
	if len(b.backdrops) != 1 || b.backdrops[0] != bg {
		t.Fatalf("anime theme backdrops = %v, want one set", b.backdrops)
	}

	sc.Update(func(s animation.State) animation.State { return s.WithTheme(appearance.ThemeLight) })
	sc.Draw(t0)
	if len(b.backdrops) != 2 || b.backdrops[1] != nil {
		t.Errorf("leaving anime theme should clear the backdrop: %v", b.backdrops)
	}
}
