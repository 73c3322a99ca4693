// Package main is the entry point for the DOGE wordmark player.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/dogemark/internal/config"
	"github.com/Faultbox/dogemark/internal/logger"
	"github.com/Faultbox/dogemark/internal/player"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== DOGE ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if unknown := cfg.UnknownGlyphs(); len(unknown) > 0 {
		logger.Warn("text has glyphs outside D, O, G, E; they render as gaps",
			zap.String("unknown", string(unknown)))
	}

	p, err := player.New(cfg, config.Path())
	if err != nil {
		logger.Error("failed to start player", zap.Error(err))
		os.Exit(1)
	}
	defer p.Close()

	if err := p.Run(); err != nil {
		logger.Error("player error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("player closed normally")
}
