// Package prompt asks yes/no and multiple-choice questions on a terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

// Sentinel errors.
var (
	// ErrNoOptions is returned when a choice is asked with no options.
	ErrNoOptions = errors.New("prompt: no options to choose from")
	// ErrAborted is returned when the user interrupts the prompt.
	ErrAborted = errors.New("prompt: aborted")
)

// LineReader reads one line of input after showing prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Prompter asks questions through a LineReader and prints option lists to
// an output writer.
type Prompter struct {
	in  LineReader
	out io.Writer

	// AssumeYes makes AskPermission answer yes without reading input.
	AssumeYes bool
}

// New returns a Prompter reading from in and printing to out.
func New(in LineReader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Terminal is a readline-backed LineReader.
type Terminal struct {
	rl *readline.Instance
}

// NewTerminal opens the terminal for line editing.
func NewTerminal() (*Terminal, error) {
	rl, err := readline.New("")
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return &Terminal{rl: rl}, nil
}

// ReadLine implements LineReader. Ctrl-C returns [ErrAborted].
func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.rl.SetPrompt(prompt)
	line, err := t.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrAborted
	}
	return line, err
}

// Stdout returns a writer that does not clobber the prompt line.
func (t *Terminal) Stdout() io.Writer { return t.rl.Stdout() }

func (t *Terminal) Close() error { return t.rl.Close() }

// NewTerminalPrompter returns a Prompter on the terminal. Close the
// returned Terminal when done.
func NewTerminalPrompter() (*Prompter, *Terminal, error) {
	t, err := NewTerminal()
	if err != nil {
		return nil, nil, err
	}
	return New(t, t.Stdout()), t, nil
}

// AskPermission asks question until the answer is y or n.
func (p *Prompter) AskPermission(question string) (bool, error) {
	if p.AssumeYes {
		return true, nil
	}
	for {
		answer, err := p.in.ReadLine(question + " y/n ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}

// AskChoice lists options and asks for an index until a valid one is
// given. A single option is returned without asking.
func AskChoice[T any](p *Prompter, question string, options []T) (T, error) {
	var zero T
	switch len(options) {
	case 0:
		return zero, ErrNoOptions
	case 1:
		return options[0], nil
	}

	fmt.Fprintln(p.out, question)
	for i, option := range options {
		fmt.Fprintf(p.out, "%d. %v\n", i, option)
	}

	for {
		answer, err := p.in.ReadLine("Enter chosen index: ")
		if err != nil {
			return zero, err
		}
		if i, err := strconv.Atoi(strings.TrimSpace(answer)); err == nil && i >= 0 && i < len(options) {
			return options[i], nil
		}
	}
}

// AskChoiceFlagged asks once. "-" aborts and returns false; an empty
// answer is the empty string; a valid index picks that option; any other
// text is returned as typed.
func (p *Prompter) AskChoiceFlagged(question string, options []string) (string, bool, error) {
	fmt.Fprintln(p.out, question)
	for i, option := range options {
		fmt.Fprintf(p.out, "%d: %s\n", i, option)
	}
	fmt.Fprintln(p.out, "-: abort")
	fmt.Fprintln(p.out, `"": empty`)

	answer, err := p.in.ReadLine("Enter chosen option: ")
	if err != nil {
		return "", false, err
	}
	switch answer {
	case "-":
		return "", false, nil
	case "":
		return "", true, nil
	}
	if i, err := strconv.ParseUint(answer, 10, 0); err == nil && i < uint64(len(options)) {
		return options[i], true, nil
	}
	return answer, true, nil
}

// AskChoiceWithOther is [AskChoice] with an extra "other" option that
// asks for free text.
func (p *Prompter) AskChoiceWithOther(question string, options []string) (string, error) {
	const other = "other"
	choice, err := AskChoice(p, question, append(options[:len(options):len(options)], other))
	if err != nil || choice != other {
		return choice, err
	}
	return p.in.ReadLine("> ")
}
