// DOGE Studio - an editor panel for tweaking the wordmark live.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Faultbox/dogemark/internal/config"
	"github.com/Faultbox/dogemark/internal/logger"
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	app := NewApp(cfg)
	defer app.Close()

	app.Run()
}
