// Package logging builds the slog loggers used by the command-line tools.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Options selects the handler and level.
type Options struct {
	Level slog.Leveler
	// JSON writes JSON lines instead of coloured text.
	JSON    bool
	NoColor bool
	// Writer defaults to stdout for JSON and stderr for text.
	Writer io.Writer
}

// New returns a logger for opts.
func New(opts Options) *slog.Logger {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if opts.JSON {
		w := opts.Writer
		if w == nil {
			w = os.Stdout
		}
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		w := opts.Writer
		if w == nil {
			w = os.Stderr
		}
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			NoColor:    opts.NoColor,
			TimeFormat: time.Kitchen,
		})
	}

	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Measure logs how long the surrounding call took, at debug level:
//
//	defer logging.Measure(logger, "renumber")()
func Measure(logger *slog.Logger, name string) func() {
	start := time.Now()
	return func() {
		logger.Debug(name+" finished", "took", time.Since(start))
	}
}
