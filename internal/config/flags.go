package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagText       = flag.String("text", "", "Word to lay out")
	flagDepth      = flag.Float64("depth", 0, "Extrusion depth (0.05-0.6)")
	flagSpeed      = flag.Float64("speed", 0, "Animation speed multiplier (0.1-3.0)")
	flagColor      = flag.String("color", "", "Wordmark color as #rrggbb")
	flagTheme      = flag.String("theme", "", "Background theme (dark, light, blue, anime)")
	flagAutoplay   = flag.Bool("autoplay", false, "Start playing immediately")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Graphics.ShowFPS = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagText != "" {
		cfg.Wordmark.Text = *flagText
	}
	if *flagDepth > 0 {
		cfg.Wordmark.Depth = float32(*flagDepth)
	}
	if *flagSpeed > 0 {
		cfg.Animation.Speed = *flagSpeed
	}
	if *flagColor != "" {
		cfg.Appearance.Color = *flagColor
	}
	if *flagTheme != "" {
		cfg.Appearance.Theme = *flagTheme
	}
	if *flagAutoplay {
		cfg.Animation.Autoplay = true
	}
}
