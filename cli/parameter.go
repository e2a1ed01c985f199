package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Kind is the type a parameter's value is converted to.
type Kind int

const (
	String Kind = iota
	Int
	Bool
)

// NArgs values for positional parameters.
const (
	One      = ""  // exactly one value, required
	Optional = "?" // zero or one value
	Many     = "*" // any number of values
)

// Parameter describes one positional argument or flag.
//
// A parameter with Flags (e.g. "-w", "--width") is a flag; otherwise Name
// makes it positional. A nil Default leaves an unset flag absent from
// [Args], so it can be told apart from an explicit zero.
type Parameter struct {
	Name    string
	Flags   []string
	NArgs   string
	Default any
	Kind    Kind
	Choices []string
	Help    string
}

func (p Parameter) positional() bool { return len(p.Flags) == 0 }

// names lists the parameter's name and flags without leading dashes.
func (p Parameter) names() []string {
	var out []string
	if p.Name != "" {
		out = append(out, p.Name)
	}
	for _, f := range p.Flags {
		out = append(out, strings.TrimLeft(f, "-"))
	}
	return out
}

// Key is the name the parsed value is stored under: Name if set, else the
// long flag, else the short one.
func (p Parameter) Key() string {
	if p.Name != "" {
		return p.Name
	}
	long, short := p.flagNames()
	if long != "" {
		return long
	}
	return short
}

func (p Parameter) flagNames() (long, short string) {
	for _, f := range p.Flags {
		switch {
		case strings.HasPrefix(f, "--"):
			long = f[2:]
		case strings.HasPrefix(f, "-"):
			short = f[1:]
		}
	}
	return long, short
}

func (p Parameter) validate() error {
	if p.Name == "" && len(p.Flags) == 0 {
		return fmt.Errorf("%w: parameter has neither name nor flags", ErrInvalidName)
	}
	for _, n := range p.names() {
		if n == "" || strings.ContainsAny(n, " \t") {
			return fmt.Errorf("%w: parameter %q", ErrInvalidName, n)
		}
	}
	if _, short := p.flagNames(); len(short) > 1 {
		return fmt.Errorf("%w: shorthand %q is longer than one letter", ErrInvalidName, short)
	}
	return nil
}

// convert parses a raw command-line value according to the kind.
func (p Parameter) convert(raw string) (any, error) {
	if len(p.Choices) > 0 && !slices.Contains(p.Choices, raw) {
		return nil, fmt.Errorf("%w: %s=%q, want one of %v", ErrInvalidChoice, p.Key(), raw, p.Choices)
	}
	switch p.Kind {
	case Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidValue, p.Key(), raw)
		}
		return n, nil
	case Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidValue, p.Key(), raw)
		}
		return b, nil
	default:
		return raw, nil
	}
}

// define registers a flag parameter on fs. The flag is always a string
// flag (a bool flag for Bool) so conversion and choices are handled the
// same way as for positionals.
func (p Parameter) define(fs *pflag.FlagSet) {
	long, short := p.flagNames()
	if long == "" {
		long = p.Key()
	}
	if p.Kind == Bool {
		def, _ := p.Default.(bool)
		fs.BoolP(long, short, def, p.Help)
		return
	}
	def := ""
	if p.Default != nil {
		def = fmt.Sprint(p.Default)
	}
	fs.StringP(long, short, def, p.Help)
}
