// Package player runs the wordmark in an SDL window with keyboard controls.
package player

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/dogemark/internal/config"
	"github.com/Faultbox/dogemark/internal/engine/debug"
	"github.com/Faultbox/dogemark/internal/engine/input"
	"github.com/Faultbox/dogemark/internal/engine/renderer"
	"github.com/Faultbox/dogemark/internal/engine/scene"
	"github.com/Faultbox/dogemark/internal/engine/shader"
	"github.com/Faultbox/dogemark/internal/engine/window"
	"github.com/Faultbox/dogemark/internal/logger"
)

const title = "DOGE"

// Player is the windowed wordmark viewer.
type Player struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	watcher  *config.Watcher
	shots    *debug.ScreenshotCapture
	log      *zap.Logger

	// set by F12, captured after the next draw and before the swap
	pendingShot bool
}

// New opens the window, creates the GL renderer and uploads the initial
// mesh. Failures are shown once in a message box and returned.
func New(cfg *config.Config, configPath string) (*Player, error) {
	p := &Player{
		cfg:   cfg,
		input: input.New(),
		shots: debug.NewScreenshotCapture("screenshots", "doge"),
		log:   logger.Named("player"),
	}

	var err error
	p.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		err = fmt.Errorf("%w: %v", renderer.ErrUnsupported, err)
		window.ShowError(nil, title, ErrorMessage(err))
		return nil, err
	}

	w, h := p.window.DrawableSize()
	p.renderer, err = renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		window.ShowError(p.window, title, ErrorMessage(err))
		p.window.Close()
		return nil, err
	}

	now := time.Now()
	p.scene, err = scene.New(p.renderer, cfg.State(now))
	if err != nil {
		window.ShowError(p.window, title, ErrorMessage(err))
		p.Close()
		return nil, err
	}

	p.loadBackdrop()

	if configPath != "" {
		p.watcher, err = config.Watch(configPath)
		if err != nil {
			p.log.Warn("config hot reload disabled", zap.String("path", configPath), zap.Error(err))
		}
	}

	p.log.Info("player initialized",
		zap.String("text", cfg.Wordmark.Text),
		zap.Int("width", w),
		zap.Int("height", h),
	)
	return p, nil
}

// ErrorMessage turns a startup error into text for the error surface.
func ErrorMessage(err error) string {
	var ce *shader.CompileError
	switch {
	case errors.As(err, &ce):
		return fmt.Sprintf("Shader %s failed:\n\n%s", ce.Stage, ce.Log)
	case errors.Is(err, shader.ErrMissingUniform):
		return "Shader is missing a required uniform:\n\n" + err.Error()
	case errors.Is(err, renderer.ErrUnsupported):
		return "OpenGL 4.1 is not available on this system.\n\n" + err.Error()
	default:
		return err.Error()
	}
}

// Run starts the main loop. Each tick drains pending config reloads,
// applies input, rebuilds geometry if needed and only then draws.
func (p *Player) Run() error {
	p.running = true

	frameCount := 0
	fpsTimer := time.Now()
	lastTime := fpsTimer

	p.log.Info("starting render loop")

	for p.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		p.drainConfig()

		if p.input.Update() {
			p.running = false
			break
		}

		for _, event := range p.input.Events() {
			if event.Type == input.EventWindowResize {
				w, h := p.window.DrawableSize()
				p.scene.Resize(w, h)
			}
		}

		for _, a := range p.input.Actions() {
			p.handle(a, now)
		}

		pose := p.scene.Draw(now)
		if p.pendingShot {
			p.pendingShot = false
			p.screenshot()
		}
		p.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if p.cfg.Graphics.ShowFPS {
				p.window.SetTitle(fmt.Sprintf("%s  %d fps  %s", title, frameCount, pose.Phase))
			}
			p.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Stringer("phase", pose.Phase),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (p *Player) handle(a input.Action, now time.Time) {
	switch a {
	case input.ActionQuit:
		p.running = false
	case input.ActionScreenshot:
		p.pendingShot = true
	default:
		if err := p.scene.Apply(Apply(p.scene.State(), a, now)); err != nil {
			p.log.Error("rebuild failed", zap.Error(err))
		}
	}
}

func (p *Player) drainConfig() {
	if p.watcher == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-p.watcher.Updates():
			if !ok {
				p.watcher = nil
				return
			}
			if err := logger.SetLevel(cfg.Logging.Level); err != nil {
				p.log.Warn("invalid log level", zap.Error(err))
			}
			cfg.Graphics = p.cfg.Graphics
			prev := p.cfg
			p.cfg = cfg
			if cfg.Appearance.Background != prev.Appearance.Background {
				p.loadBackdrop()
			}
			if err := p.scene.Apply(cfg.ApplyTo(p.scene.State())); err != nil {
				p.log.Error("rebuild after reload failed", zap.Error(err))
			}
			p.log.Info("config applied")
		default:
			return
		}
	}
}

// loadBackdrop reads the configured anime theme background. A missing or
// unreadable file leaves the plain clear color.
func (p *Player) loadBackdrop() {
	img, err := p.cfg.Backdrop()
	if err != nil {
		p.log.Warn("background image unavailable",
			zap.String("path", p.cfg.Appearance.Background),
			zap.Error(err),
		)
	}
	p.scene.SetBackdrop(img)
}

func (p *Player) screenshot() {
	w, h := p.renderer.Size()
	path, err := p.shots.CaptureFromPixels(p.renderer.ReadPixels(), w, h)
	if err != nil {
		p.log.Error("screenshot failed", zap.Error(err))
		return
	}
	p.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the watcher, renderer and window.
func (p *Player) Close() {
	p.log.Info("closing player")

	if p.watcher != nil {
		p.watcher.Close()
	}
	if p.renderer != nil {
		p.renderer.Close()
	}
	if p.window != nil {
		p.window.Close()
	}
}
