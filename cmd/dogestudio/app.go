package main

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/dogemark/internal/appearance"
	"github.com/Faultbox/dogemark/internal/config"
	"github.com/Faultbox/dogemark/internal/engine/animation"
	"github.com/Faultbox/dogemark/internal/engine/framebuffer"
	"github.com/Faultbox/dogemark/internal/engine/renderer"
	"github.com/Faultbox/dogemark/internal/engine/scene"
	"github.com/Faultbox/dogemark/internal/engine/ui"
	"github.com/Faultbox/dogemark/internal/logger"
	"github.com/Faultbox/dogemark/internal/player"
)

// Layout
const (
	controlsWidth   = float32(300)
	statusBarHeight = float32(28)
	viewWidth       = 960
	viewHeight      = 540
)

// App is the studio state. Everything except the dialog goroutines runs
// on the main thread inside render.
type App struct {
	backend *ui.Backend
	cfg     *config.Config
	log     *zap.Logger

	renderer *renderer.Renderer
	fb       *framebuffer.Framebuffer
	scene    *scene.Scene

	// Set once when GL setup fails; the app then only shows the error.
	fatal string

	// Last rebuild or export failure, shown in the status bar.
	status     string
	statusTime time.Time

	// Dialog results, consumed on the main thread.
	pending chan pendingFile
}

// NewApp creates the window and the GL resources. GL failures are kept
// for the error panel instead of aborting.
func NewApp(cfg *config.Config) *App {
	app := &App{
		cfg:     cfg,
		log:     logger.Named("studio"),
		pending: make(chan pendingFile, 4),
	}

	bg := cfg.State(time.Now()).Theme.Background()
	var err error
	app.backend, err = ui.NewBackend("DOGE Studio",
		cfg.Graphics.Width+int(controlsWidth), cfg.Graphics.Height,
		appearance.Color{bg[0] * 0.6, bg[1] * 0.6, bg[2] * 0.6, 1})
	if err != nil {
		panic(fmt.Sprintf("failed to create backend: %v", err))
	}

	if err := app.initGL(); err != nil {
		app.fatal = player.ErrorMessage(err)
		app.log.Error("studio GL setup failed", zap.Error(err))
	}

	return app
}

func (app *App) initGL() error {
	var err error
	app.renderer, err = renderer.New(renderer.Config{Width: viewWidth, Height: viewHeight})
	if err != nil {
		return err
	}

	app.fb, err = framebuffer.New(viewWidth, viewHeight)
	if err != nil {
		return fmt.Errorf("%w: %v", renderer.ErrUnsupported, err)
	}

	app.scene, err = scene.New(app.renderer, app.cfg.State(time.Now()))
	if err != nil {
		return err
	}

	bg, err := app.cfg.Backdrop()
	if err != nil {
		app.log.Warn("background image unavailable", zap.Error(err))
	}
	app.scene.SetBackdrop(bg)
	return nil
}

// Close cleans up resources.
func (app *App) Close() {
	if app.fb != nil {
		app.fb.Destroy()
	}
	if app.renderer != nil {
		app.renderer.Close()
	}
}

// Run starts the main application loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// update applies a state transition and reports rebuild failures.
func (app *App) update(fn func(animation.State) animation.State) {
	if err := app.scene.Update(fn); err != nil {
		app.setStatus("Rebuild failed: " + err.Error())
	}
}

func (app *App) setStatus(msg string) {
	app.status = msg
	app.statusTime = time.Now()
}

// render is called each frame to draw the UI.
func (app *App) render() {
	workPos, workSize := ui.Viewport()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	if app.fatal != "" {
		imgui.SetNextWindowPos(workPos)
		imgui.SetNextWindowSize(workSize)
		if imgui.BeginV("Error", nil, flags) {
			imgui.TextColored(imgui.NewVec4(1, 0.4, 0.4, 1), "Rendering is unavailable")
			imgui.Separator()
			imgui.TextWrapped(app.fatal)
		}
		imgui.End()
		return
	}

	now := time.Now()
	app.processPending(now)
	app.handleKeys(now)

	contentHeight := workSize.Y - statusBarHeight
	viewW := workSize.X - controlsWidth

	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(viewW, contentHeight))
	var pose animation.Pose
	if imgui.BeginV("Wordmark", nil, flags|imgui.WindowFlagsNoScrollbar) {
		pose = app.renderView(now)
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+viewW, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(controlsWidth, contentHeight))
	if imgui.BeginV("Controls", nil, flags) {
		app.renderControls(now, pose)
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X, workPos.Y+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, statusBarHeight))
	if imgui.BeginV("Status", nil, flags|imgui.WindowFlagsNoTitleBar|imgui.WindowFlagsNoScrollbar) {
		app.renderStatus(pose)
	}
	imgui.End()
}

// handleKeys maps Space and R while no widget has focus.
func (app *App) handleKeys(now time.Time) {
	if ui.KeyPressed(imgui.KeySpace) {
		app.update(func(s animation.State) animation.State { return s.Toggle(now) })
	}
	if ui.KeyPressed(imgui.KeyR) {
		app.update(func(s animation.State) animation.State { return s.Reset(now) })
	}
}

// renderView draws the scene into the offscreen target and shows it,
// keeping the target sized to the panel.
func (app *App) renderView(now time.Time) animation.Pose {
	avail := imgui.ContentRegionAvail()
	w, h := int(avail.X), int(avail.Y)
	if w < 1 || h < 1 {
		return app.scene.State().Frame(now)
	}
	if app.fb.Resize(w, h) {
		app.scene.Resize(w, h)
	}

	var pose animation.Pose
	app.fb.Draw(func() {
		pose = app.scene.Draw(now)
	})

	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(app.fb.Texture()))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(float32(w), float32(h)),
		imgui.NewVec2(0, 1), // UV flipped
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)
	return pose
}

func (app *App) renderStatus(pose animation.Pose) {
	s := app.scene.State()
	state := "paused"
	if s.Clock.Playing() {
		state = "playing"
	}
	imgui.Text(fmt.Sprintf("%s | t=%.2f | %s | %d triangles", state, pose.Time, pose.Phase, app.scene.Mesh().TriangleCount()))

	if app.status != "" && time.Since(app.statusTime) < 5*time.Second {
		imgui.SameLine()
		imgui.TextColored(imgui.NewVec4(1, 0.8, 0.3, 1), "  "+app.status)
	}
}
