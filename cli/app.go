package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/djachenko/justin-utils/arr"
	"github.com/djachenko/justin-utils/seq"
)

// App dispatches to one of several commands by name.
type App struct {
	name     string
	commands []*Command

	// Output receives usage text. Defaults to os.Stderr.
	Output io.Writer
}

// NewApp returns an app named name. Command names must be distinct, or
// [ErrDuplicateCommand] is returned.
func NewApp(name string, commands ...*Command) (*App, error) {
	if !arr.IsDistinct(commands, (*Command).Name) {
		return nil, fmt.Errorf("%w in %s", ErrDuplicateCommand, name)
	}
	return &App{name: name, commands: commands}, nil
}

func (a *App) output() io.Writer {
	if a.Output != nil {
		return a.Output
	}
	return os.Stderr
}

// Command returns the command called name.
func (a *App) Command(name string) (*Command, bool) {
	return seq.FromSlice(a.commands).First(func(c *Command) bool { return c.name == name })
}

// Run runs the command named by args[0] with the remaining arguments.
// A help flag prints usage and returns nil.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}
	if args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		a.Usage(a.output())
		return nil
	}

	cmd, ok := a.Command(args[0])
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	err := cmd.Run(ctx, args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		cmd.Usage(a.output())
		return nil
	}
	return err
}

// Usage writes the list of commands to w.
func (a *App) Usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <command> [flags] [arguments]\n\nCommands:\n", a.name)
	for _, c := range a.commands {
		fmt.Fprintf(w, "  %s\n", c.name)
	}
}
