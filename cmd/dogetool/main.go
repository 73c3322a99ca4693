// dogetool is a CLI utility for inspecting and exporting the wordmark
// without a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/dogemark/internal/config"
	"github.com/Faultbox/dogemark/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := logger.InitWithWriter("warn", os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "stats":
		err = cmdStats(os.Stdout, args)
	case "curve":
		err = cmdCurve(os.Stdout, args)
	case "snapshot", "snap":
		err = cmdSnapshot(os.Stdout, args)
	case "export", "x":
		err = cmdExport(os.Stdout, args)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `dogetool - wordmark inspection utility

Usage:
  dogetool <command> [options]

Commands:
  stats                              Show mesh statistics
  curve [-step s] [-until s]         Print the animation curve as a table
  snapshot [-o dir] [-t times]       Render frames to PNG without a window
  export <file.obj|file.obj.zst>     Write the mesh as Wavefront OBJ

Common options:
  -config path   Config file (default: search standard locations)
  -text word     Override the word
  -depth d       Override the extrusion depth

Examples:
  dogetool stats -text DOGE
  dogetool curve -step 0.5 -until 8
  dogetool snapshot -o frames -t 0,2,5,7
  dogetool export doge.obj.zst`)
}

// commonFlags registers the options shared by every command.
type commonFlags struct {
	config *string
	text   *string
	depth  *float64
}

func registerCommon(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		config: fs.String("config", "", "Path to config file"),
		text:   fs.String("text", "", "Word to lay out"),
		depth:  fs.Float64("depth", 0, "Extrusion depth"),
	}
}

// load reads the config and applies the command-line overrides.
func (c commonFlags) load() (*config.Config, error) {
	path := *c.config
	if path == "" {
		path = config.Path()
	}

	var cfg *config.Config
	if path == "" {
		cfg = config.Default()
	} else {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if *c.text != "" {
		cfg.Wordmark.Text = *c.text
	}
	if *c.depth > 0 {
		cfg.Wordmark.Depth = float32(*c.depth)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
