package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/palm-bounce/config"
	"github.com/lixenwraith/palm-bounce/core"
)

// options holds raw command-line values; only flags set explicitly override the config file
type options struct {
	configPath string
	source     string
	trace      string
	loop       bool
	debug      bool
	mute       bool
}

func parseFlags(args []string) (options, *flag.FlagSet, error) {
	var opts options
	fs := flag.NewFlagSet("palm-bounce", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to TOML config file")
	fs.StringVar(&opts.source, "source", config.SourceMouse, "Hand source: mouse or trace")
	fs.StringVar(&opts.trace, "trace", "", "YAML hand trace to replay (implies -source trace)")
	fs.BoolVar(&opts.loop, "loop", true, "Restart the trace when it ends")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs/palm-bounce.log and show metrics")
	fs.BoolVar(&opts.mute, "mute", false, "Disable sound")
	err := fs.Parse(args)
	return opts, fs, err
}

// applyOverrides copies explicitly set flags over cfg
func applyOverrides(cfg config.Config, fs *flag.FlagSet, opts options) config.Config {
	sourceSet := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.Tracking.Source = opts.source
			sourceSet = true
		case "trace":
			cfg.Tracking.Trace = opts.trace
		case "loop":
			cfg.Tracking.Loop = opts.loop
		case "debug":
			cfg.Debug = opts.debug
		case "mute":
			cfg.Audio = !opts.mute
		}
	})
	if opts.trace != "" && !sourceSet {
		cfg.Tracking.Source = config.SourceTrace
	}
	return cfg
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, fs, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "palm-bounce: %v\n", err)
		os.Exit(1)
	}
	cfg = applyOverrides(cfg, fs, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "palm-bounce: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Dependency Injection: restore the terminal before any crash report
	core.SetCrashHook(screen.Fini)
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	game := NewGame(cfg, screen)
	defer game.Close()

	game.run()
}
