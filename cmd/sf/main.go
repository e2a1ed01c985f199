package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"

	"github.com/djachenko/justin-utils/internal/config"
	"github.com/djachenko/justin-utils/internal/logging"
	"github.com/djachenko/justin-utils/internal/subfolder"
)

var (
	verbose = false
	jsonLog = false
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [flags] <name> [pattern]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Moves every path matching pattern (default *) into a sub-folder called name.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		pflag.PrintDefaults()
	}
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "Verbose output")
	pflag.BoolVarP(&jsonLog, "json-log", "j", jsonLog, "log output as JSON to stdout")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", tint.Err(err))
		os.Exit(1)
	}

	level := cfg.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(logging.Options{
		Level:   level,
		JSON:    jsonLog || cfg.LogJSON,
		NoColor: !cfg.Color(),
	})
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd, err := subfolder.NewCommand(&subfolder.Mover{Logger: logger})
	if err != nil {
		logger.Error("failed to build command", tint.Err(err))
		os.Exit(1)
	}

	if err := cmd.Run(ctx, pflag.Args()); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			pflag.Usage()
			return
		}
		logger.Error("sf failed", tint.Err(err))
		cancel()
		os.Exit(1)
	}
}
