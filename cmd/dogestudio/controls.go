package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/dogemark/internal/appearance"
	"github.com/Faultbox/dogemark/internal/engine/animation"
)

// renderControls draws the playback, geometry and appearance widgets.
func (app *App) renderControls(now time.Time, pose animation.Pose) {
	s := app.scene.State()

	imgui.Text("Playback")
	label := "Play"
	if s.Clock.Playing() {
		label = "Pause"
	}
	if imgui.ButtonV(label, imgui.NewVec2(135, 0)) {
		app.update(func(s animation.State) animation.State { return s.Toggle(now) })
	}
	imgui.SameLine()
	if imgui.ButtonV("Reset", imgui.NewVec2(-1, 0)) {
		app.update(func(s animation.State) animation.State { return s.Reset(now) })
	}

	speed := float32(s.Speed)
	imgui.Text("Speed:")
	imgui.SameLine()
	imgui.SetNextItemWidth(-1)
	if imgui.SliderFloatV("##Speed", &speed, float32(animation.MinSpeed), float32(animation.MaxSpeed), "%.1fx", imgui.SliderFlagsNone) {
		app.update(func(s animation.State) animation.State { return s.WithSpeed(float64(speed)) })
	}

	imgui.Spacing()
	imgui.Separator()
	imgui.Text("Geometry")

	depth := s.Depth
	imgui.Text("Depth:")
	imgui.SameLine()
	imgui.SetNextItemWidth(-1)
	if imgui.SliderFloatV("##Depth", &depth, animation.MinDepth, animation.MaxDepth, "%.2f", imgui.SliderFlagsNone) {
		app.update(func(s animation.State) animation.State { return s.WithDepth(depth) })
	}

	imgui.TextDisabled(fmt.Sprintf("%q, %d blocks", s.Text, app.scene.Mesh().VertexCount()/8))

	imgui.Spacing()
	imgui.Separator()
	imgui.Text("Appearance")

	rgb := s.Color.RGB()
	if imgui.ColorEdit3("Color", &rgb) {
		app.update(func(s animation.State) animation.State { return s.WithColor(appearance.FromRGB(rgb)) })
	}

	for i, th := range appearance.Themes() {
		if i > 0 {
			imgui.SameLine()
		}
		name := strings.ToUpper(string(th[:1])) + string(th[1:])
		if th == s.Theme {
			name = "[" + name + "]"
		}
		if imgui.Button(name) {
			app.update(func(s animation.State) animation.State { return s.WithTheme(th) })
		}
	}

	imgui.Spacing()
	imgui.Separator()
	imgui.Text("Motion")

	product := s.Compose == animation.ComposeProduct
	if imgui.Checkbox("True rotation product", &product) {
		mode := animation.ComposeOverwrite
		if product {
			mode = animation.ComposeProduct
		}
		app.update(func(s animation.State) animation.State { return s.WithCompose(mode) })
	}
	bounce := s.Bounce
	if imgui.Checkbox("Bounce during tumble", &bounce) {
		app.update(func(s animation.State) animation.State { return s.WithBounce(bounce) })
	}

	imgui.Text(fmt.Sprintf("Phase: %s", pose.Phase))
	imgui.Text(fmt.Sprintf("rotX %.2f  rotY %.2f", pose.RotX, pose.RotY))
	imgui.Text(fmt.Sprintf("scale %.2f", pose.Scale))

	imgui.Spacing()
	imgui.Separator()

	if imgui.ButtonV("Export mesh...", imgui.NewVec2(-1, 0)) {
		app.openSaveDialog(kindMesh)
	}
	if imgui.ButtonV("Save snapshot...", imgui.NewVec2(-1, 0)) {
		app.openSaveDialog(kindSnapshot)
	}
	if imgui.ButtonV("Save settings", imgui.NewVec2(-1, 0)) {
		app.cfg.CaptureState(s)
		if err := app.cfg.Save(); err != nil {
			app.log.Error("saving settings failed", zap.Error(err))
			app.setStatus("Save failed: " + err.Error())
		} else {
			app.setStatus("Settings saved")
		}
	}
}
