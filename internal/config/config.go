// Package config handles wordmark configuration loading and management.
package config

// Config holds all player settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Wordmark   WordmarkConfig   `yaml:"wordmark"`
	Animation  AnimationConfig  `yaml:"animation"`
	Appearance AppearanceConfig `yaml:"appearance"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// WordmarkConfig controls the laid-out geometry. Any change here triggers
// a mesh rebuild.
type WordmarkConfig struct {
	Text  string  `yaml:"text"`
	Gap   float32 `yaml:"gap"`
	Depth float32 `yaml:"depth"`
}

// AnimationConfig holds playback settings.
type AnimationConfig struct {
	Speed    float64 `yaml:"speed"`
	Autoplay bool    `yaml:"autoplay"`
	Compose  string  `yaml:"compose"` // overwrite | product
	Bounce   bool    `yaml:"bounce"`
}

// AppearanceConfig holds cosmetic settings.
type AppearanceConfig struct {
	Color      string `yaml:"color"` // #rrggbb
	Theme      string `yaml:"theme"`
	Background string `yaml:"background"` // image shown by the anime theme
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Wordmark: WordmarkConfig{
			Text:  "DOGE",
			Gap:   0.35,
			Depth: 0.22,
		},
		Animation: AnimationConfig{
			Speed:    1.0,
			Autoplay: false,
			Compose:  "overwrite",
		},
		Appearance: AppearanceConfig{
			Color: "#0fe6e6",
			Theme: "dark",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
