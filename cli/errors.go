package cli

import "errors"

// Sentinel errors returned while building or running commands.
var (
	ErrInvalidName        = errors.New("cli: invalid name")
	ErrParameterCollision = errors.New("cli: parameter declared by more than one action")
	ErrDuplicateCommand   = errors.New("cli: duplicate command name")
	ErrNoCommand          = errors.New("cli: no command given")
	ErrUnknownCommand     = errors.New("cli: unknown command")
	ErrMissingArgument    = errors.New("cli: missing argument")
	ErrUnexpectedArgument = errors.New("cli: unexpected argument")
	ErrInvalidValue       = errors.New("cli: invalid value")
	ErrInvalidChoice      = errors.New("cli: invalid choice")
)
