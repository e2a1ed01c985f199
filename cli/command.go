package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// Action is one step of a command.
type Action interface {
	// Parameters lists the arguments and flags the action reads.
	Parameters() []Parameter
	// Perform runs the action with the parsed arguments.
	Perform(ctx context.Context, args *Args) error
}

// Command runs its actions in order with one shared set of arguments.
type Command struct {
	name    string
	actions []Action
	params  []Parameter
}

// NewCommand bundles actions under name. Two actions may declare the same
// parameter only if one of its names is listed in shared; the parameter is
// then defined once. Any other overlap returns [ErrParameterCollision].
func NewCommand(name string, actions []Action, shared ...string) (*Command, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t\n") {
		return nil, fmt.Errorf("%w: command %q", ErrInvalidName, name)
	}

	var params []Parameter
	seen := make(map[string]string) // name → signature
	for _, action := range actions {
		for _, p := range action.Parameters() {
			if err := p.validate(); err != nil {
				return nil, fmt.Errorf("command %s: %w", name, err)
			}

			names := p.names()
			signature := strings.Join(names, " ")
			duplicate := false
			for _, n := range names {
				prev, ok := seen[n]
				if !ok {
					continue
				}
				if prev != signature || !slices.ContainsFunc(names, func(s string) bool { return slices.Contains(shared, s) }) {
					return nil, fmt.Errorf("%w: %s in command %s", ErrParameterCollision, n, name)
				}
				duplicate = true
			}
			if duplicate {
				continue
			}
			for _, n := range names {
				seen[n] = signature
			}
			params = append(params, p)
		}
	}

	return &Command{name: name, actions: actions, params: params}, nil
}

// MustCommand is [NewCommand] without shared parameters that panics on
// error.
func MustCommand(name string, actions ...Action) *Command {
	c, err := NewCommand(name, actions)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// Parameters returns the de-duplicated parameters of all actions.
func (c *Command) Parameters() []Parameter { return slices.Clone(c.params) }

func (c *Command) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(c.name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, p := range c.params {
		if !p.positional() {
			p.define(fs)
		}
	}
	return fs
}

// Parse turns argv into Args without running anything.
func (c *Command) Parse(argv []string) (*Args, error) {
	fs := c.flagSet()
	if err := fs.Parse(argv); err != nil {
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}

	values := make(map[string]any)
	for _, p := range c.params {
		if p.positional() {
			continue
		}
		long, _ := p.flagNames()
		if long == "" {
			long = p.Key()
		}
		f := fs.Lookup(long)
		switch {
		case f.Changed && p.Kind == Bool:
			values[p.Key()], _ = fs.GetBool(long)
		case f.Changed:
			v, err := p.convert(f.Value.String())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", c.name, err)
			}
			values[p.Key()] = v
		case p.Default != nil:
			values[p.Key()] = p.Default
		}
	}

	if err := c.assignPositionals(fs.Args(), values); err != nil {
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}
	return &Args{values: values}, nil
}

// assignPositionals fills positional parameters in declaration order.
// Optional and variadic parameters only take values that the required
// parameters after them can spare.
func (c *Command) assignPositionals(rest []string, values map[string]any) error {
	required := 0
	for _, p := range c.params {
		if p.positional() && p.NArgs == One {
			required++
		}
	}

	for _, p := range c.params {
		if !p.positional() {
			continue
		}
		switch p.NArgs {
		case One:
			if len(rest) == 0 {
				return fmt.Errorf("%w: %s", ErrMissingArgument, p.Name)
			}
			v, err := p.convert(rest[0])
			if err != nil {
				return err
			}
			values[p.Key()] = v
			rest = rest[1:]
			required--
		case Optional:
			if len(rest) > required {
				v, err := p.convert(rest[0])
				if err != nil {
					return err
				}
				values[p.Key()] = v
				rest = rest[1:]
			} else if p.Default != nil {
				values[p.Key()] = p.Default
			}
		case Many:
			n := max(len(rest)-required, 0)
			v, err := p.convertMany(rest[:n])
			if err != nil {
				return err
			}
			values[p.Key()] = v
			rest = rest[n:]
		}
	}

	if len(rest) > 0 {
		return fmt.Errorf("%w: %q", ErrUnexpectedArgument, rest[0])
	}
	return nil
}

func (p Parameter) convertMany(raw []string) (any, error) {
	if p.Kind == Int {
		out := make([]int, 0, len(raw))
		for _, r := range raw {
			v, err := p.convert(r)
			if err != nil {
				return nil, err
			}
			out = append(out, v.(int))
		}
		return out, nil
	}
	for _, r := range raw {
		if _, err := p.convert(r); err != nil {
			return nil, err
		}
	}
	return slices.Clone(raw), nil
}

// Run parses argv and performs every action in order, stopping at the
// first error or when ctx is done.
func (c *Command) Run(ctx context.Context, argv []string) error {
	args, err := c.Parse(argv)
	if err != nil {
		return err
	}
	for _, action := range c.actions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := action.Perform(ctx, args); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	return nil
}

// Usage writes a synopsis and the flag defaults to w.
func (c *Command) Usage(w io.Writer) {
	var synopsis []string
	for _, p := range c.params {
		if !p.positional() {
			continue
		}
		switch p.NArgs {
		case Optional:
			synopsis = append(synopsis, "["+p.Name+"]")
		case Many:
			synopsis = append(synopsis, "["+p.Name+"...]")
		default:
			synopsis = append(synopsis, "<"+p.Name+">")
		}
	}
	fmt.Fprintf(w, "Usage: %s [flags] %s\n", c.name, strings.Join(synopsis, " "))
	if flags := c.flagSet().FlagUsages(); flags != "" {
		fmt.Fprintf(w, "\nFlags:\n%s", flags)
	}
}
