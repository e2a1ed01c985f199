// Package subfolder moves matched paths into a named sub-folder next to
// them.
package subfolder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/djachenko/justin-utils/cli"
	"github.com/djachenko/justin-utils/datasize"
	"github.com/djachenko/justin-utils/internal/logging"
	"github.com/djachenko/justin-utils/pathseq"
)

// ErrInvalidName is returned for a sub-folder name that is not a single
// path segment.
var ErrInvalidName = errors.New("subfolder: invalid folder name")

// Mover moves paths into sub-folders.
type Mover struct {
	Logger *slog.Logger
}

func (m *Mover) logger() *slog.Logger {
	if m.Logger == nil {
		return logging.Discard()
	}
	return m.Logger
}

// Move moves every path matched by pattern to <parent>/<name>/<base>,
// creating the folder as needed. Matches are collected before anything
// moves, and the target folders themselves are left alone. It returns the
// number of paths moved.
func (m *Mover) Move(ctx context.Context, name, pattern string) (int, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	defer logging.Measure(m.logger(), "move")()

	paths, err := pathseq.ResolveErr(pattern)
	if err != nil {
		return 0, err
	}
	matches := paths.Reject(func(path string) bool { return filepath.Base(path) == name }).ToSlice()

	var total datasize.Size
	for i, path := range matches {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		folder := filepath.Join(filepath.Dir(path), name)
		if err := os.MkdirAll(folder, 0o755); err != nil {
			return i, fmt.Errorf("create folder: %w", err)
		}

		info, err := os.Lstat(path)
		if err != nil {
			return i, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			total += datasize.Size(info.Size())
		}

		target := filepath.Join(folder, filepath.Base(path))
		if err := os.Rename(path, target); err != nil {
			return i, fmt.Errorf("move %s: %w", path, err)
		}
		m.logger().Debug("moved", "from", path, "to", target)
	}

	m.logger().Info("moved paths", "folder", name, "count", len(matches), "files_size", total.String())
	return len(matches), nil
}

type moveAction struct {
	mover *Mover
}

func (a moveAction) Parameters() []cli.Parameter {
	return []cli.Parameter{
		{Name: "name", Help: "name of the sub-folder"},
		{Name: "pattern", NArgs: cli.Optional, Default: "*", Help: "paths to move"},
	}
}

func (a moveAction) Perform(ctx context.Context, args *cli.Args) error {
	_, err := a.mover.Move(ctx, args.String("name"), args.String("pattern"))
	return err
}

// NewCommand returns the sf command bound to mover.
func NewCommand(mover *Mover) (*cli.Command, error) {
	return cli.NewCommand("sf", []cli.Action{moveAction{mover: mover}})
}
