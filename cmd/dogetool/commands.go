package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Faultbox/dogemark/internal/engine/animation"
	"github.com/Faultbox/dogemark/internal/engine/debug"
	"github.com/Faultbox/dogemark/internal/engine/geometry"
	"github.com/Faultbox/dogemark/internal/engine/raster"
	"github.com/Faultbox/dogemark/internal/engine/scene"
)

func cmdStats(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	common := registerCommon(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}

	text := cfg.Wordmark.Text
	mesh := geometry.Layout(text, cfg.Wordmark.Gap, cfg.Wordmark.Depth)
	b := mesh.Bounds

	fmt.Fprintf(w, "Word:      %s\n", text)
	fmt.Fprintf(w, "Gap:       %.3f\n", cfg.Wordmark.Gap)
	fmt.Fprintf(w, "Depth:     %.3f\n", cfg.Wordmark.Depth)
	fmt.Fprintf(w, "Width:     %.3f\n", geometry.TotalWidth(len([]rune(text)), cfg.Wordmark.Gap))
	fmt.Fprintf(w, "Blocks:    %d\n", geometry.TotalBlocks(text))
	fmt.Fprintf(w, "Vertices:  %d\n", mesh.VertexCount())
	fmt.Fprintf(w, "Triangles: %d\n", mesh.TriangleCount())
	fmt.Fprintf(w, "Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])

	if unknown := geometry.UnknownGlyphs(text); len(unknown) > 0 {
		fmt.Fprintf(w, "Unknown:   %s\n", string(unknown))
	}
	return nil
}

func cmdCurve(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("curve", flag.ContinueOnError)
	step := fs.Float64("step", 0.25, "Sample step in scaled seconds")
	until := fs.Float64("until", 8, "Last sample time")
	compose := fs.String("compose", "", "Transform composition (overwrite, product)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *step <= 0 {
		return errors.New("step must be positive")
	}

	curve := animation.Curve{}
	if *compose != "" {
		mode, ok := animation.ParseComposeMode(*compose)
		if !ok {
			return fmt.Errorf("unknown compose mode %q", *compose)
		}
		curve.Compose = mode
	}

	fmt.Fprintf(w, "%7s  %-8s %8s %8s %6s %8s\n", "t", "phase", "rotX", "rotY", "scale", "bounce")
	// The epsilon keeps 0.7/0.1 = 6.999... from dropping the last row.
	n := int(math.Floor(*until / *step + 1e-9))
	for i := 0; i <= n; i++ {
		t := float64(i) * *step
		p := curve.Evaluate(t, 1)
		fmt.Fprintf(w, "%7.2f  %-8s %8.3f %8.3f %6.3f %8.3f\n", t, p.Phase, p.RotX, p.RotY, p.Scale, p.BounceY)
	}
	return nil
}

func cmdSnapshot(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	common := registerCommon(fs)
	outDir := fs.String("o", "frames", "Output directory")
	times := fs.String("t", "0,2,4.5,5.5,7", "Comma-separated scaled times")
	width := fs.Int("width", 640, "Frame width")
	height := fs.Int("height", 360, "Frame height")
	label := fs.Bool("label", true, "Annotate frames with time and phase")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}
	samples, err := parseTimes(*times)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	r := raster.New(*width, *height)
	base := time.Unix(0, 0)
	state := cfg.State(base).Reset(base)
	sc, err := scene.New(r, state)
	if err != nil {
		return err
	}
	bg, err := cfg.Backdrop()
	if err != nil {
		return err
	}
	sc.SetBackdrop(bg)

	text := state.Theme.Background().Contrast()
	for i, t := range samples {
		pose := sc.Draw(base.Add(wallOffset(t, state.Speed)))
		if *label {
			line := fmt.Sprintf("t=%.2f %s", pose.Time, pose.Phase)
			if err := r.Label(text, line); err != nil {
				return err
			}
		}

		path := filepath.Join(*outDir, fmt.Sprintf("frame_%03d.png", i))
		if err := debug.SavePNG(path, r.Image()); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s  t=%.2f  %s\n", path, pose.Time, pose.Phase)
	}
	return nil
}

func cmdExport(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	common := registerCommon(fs)
	name := fs.String("name", "doge", "OBJ object name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("usage: dogetool export <file.obj|file.obj.zst>")
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}

	mesh := geometry.Layout(cfg.Wordmark.Text, cfg.Wordmark.Gap, cfg.Wordmark.Depth)
	path := fs.Arg(0)
	if err := geometry.WriteOBJ(path, &mesh, *name); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s (%d vertices, %d triangles)\n", path, mesh.VertexCount(), mesh.TriangleCount())
	return nil
}

// parseTimes reads a comma-separated list of non-negative seconds.
func parseTimes(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q: %w", part, err)
		}
		if t < 0 {
			return nil, fmt.Errorf("invalid time %q: negative", part)
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, errors.New("no sample times")
	}
	return out, nil
}

// wallOffset converts a scaled curve time into the wall-clock offset that
// produces it at the given speed.
func wallOffset(scaled, speed float64) time.Duration {
	return time.Duration(scaled / speed * float64(time.Second))
}
