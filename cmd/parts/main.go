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

	"github.com/djachenko/justin-utils/cli"
	"github.com/djachenko/justin-utils/internal/config"
	"github.com/djachenko/justin-utils/internal/logging"
	"github.com/djachenko/justin-utils/internal/parts"
	"github.com/djachenko/justin-utils/prompt"
)

var (
	verbose = false
	jsonLog = false
	confirm = false
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [flags] make [root] <count>\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "  %s [flags] renumber [-w width] [root]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "  %s [flags] offset [-w width] [root] [--] <offset>\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		pflag.PrintDefaults()
	}
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "Verbose output")
	pflag.BoolVarP(&jsonLog, "json-log", "j", jsonLog, "log output as JSON to stdout")
	pflag.BoolVarP(&confirm, "confirm", "c", confirm, "ask before changing anything")
	pflag.CommandLine.SetInterspersed(false)
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", tint.Err(err))
		os.Exit(1)
	}

	logger := setupLogging(cfg)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if !run(ctx, cfg, logger) {
		cancel()
		os.Exit(1)
	}
}

func setupLogging(cfg config.Config) *slog.Logger {
	level := cfg.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(logging.Options{
		Level:   level,
		JSON:    jsonLog || cfg.LogJSON,
		NoColor: !cfg.Color(),
	})
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) bool {
	tool := &parts.Tool{
		Logger:   logger,
		Confirm:  confirm,
		MinWidth: cfg.PartsWidth,
	}

	if confirm && !cfg.AssumeYes {
		prompter, terminal, err := prompt.NewTerminalPrompter()
		if err != nil {
			logger.Error("failed to open terminal", tint.Err(err))
			return false
		}
		defer terminal.Close()
		tool.Prompter = prompter
	}

	app, err := parts.NewApp(tool)
	if err != nil {
		logger.Error("failed to build commands", tint.Err(err))
		return false
	}

	if err := app.Run(ctx, pflag.Args()); err != nil {
		if errors.Is(err, cli.ErrNoCommand) {
			pflag.Usage()
			return false
		}
		logger.Error("parts failed", tint.Err(err))
		return false
	}
	return true
}
