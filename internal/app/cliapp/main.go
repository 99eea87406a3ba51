package cliapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Taha-Raees/zetratech-front/internal/config"
	"github.com/Taha-Raees/zetratech-front/internal/infra/logger"
)

// Main parses the global flags, runs the command and returns the exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zetra-admin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", defaultConfigPath(), "path to the YAML config")
	verbose := fs.Bool("verbose", false, "log gateway activity to stderr")
	view := fs.String("view", viewAuto, "page layout: auto, mobile or desktop")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "zetra-admin: %v\n", err)
		return 1
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	log, err := logger.NewConsole(level)
	if err != nil {
		fmt.Fprintf(stderr, "zetra-admin: %v\n", err)
		return 1
	}
	defer func() {
		_ = log.Sync()
	}()

	app, err := New(cfg, Options{Out: stdout, View: *view, Logger: log})
	if err == nil {
		err = app.Run(ctx, fs.Args())
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(stderr, "zetra-admin: %v\n", err)
		if app != nil {
			app.printUsage(stderr)
		}
		return 2
	default:
		fmt.Fprintf(stderr, "zetra-admin: %v\n", err)
		return 1
	}
}

func defaultConfigPath() string {
	if path := os.Getenv("APP_CONFIG"); path != "" {
		return path
	}
	return "configs/config.yaml"
}
