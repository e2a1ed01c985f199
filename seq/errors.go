package seq

import "errors"

// Sentinel errors returned by Sequence operations.
var (
	// ErrUnhashableKey is returned when a key function yields a value that
	// cannot be used as a map key (a slice, a map, a func, or a struct or
	// array containing one).
	ErrUnhashableKey = errors.New("seq: key is not hashable")

	// ErrInvalidPairShape is returned by [ToMapAny] when the pair function
	// does not produce a two-element value.
	ErrInvalidPairShape = errors.New("seq: value is not a key/value pair")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("seq: macro not found")

	// ErrMacroType is returned when a macro is called on a sequence of a
	// different element type than it was registered for.
	ErrMacroType = errors.New("seq: macro registered for another element type")
)
