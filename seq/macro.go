package seq

import (
	"fmt"
	"sync"
)

// MacroFunc is a named transformation of a Sequence[T]. Macros should
// return a new lazy Sequence rather than consume the one they are given.
type MacroFunc[T any] func(s *Sequence[T], args ...any) *Sequence[T]

// macroRegistry holds MacroFunc values of any element type, keyed by name.
var macroRegistry = struct {
	mu     sync.RWMutex
	macros map[string]any
}{macros: make(map[string]any)}

// RegisterMacro adds a named macro for sequences of T to the global
// registry, replacing any macro already registered under that name.
//
//	seq.RegisterMacro("above", func(s *seq.Sequence[int], args ...any) *seq.Sequence[int] {
//	    limit := args[0].(int)
//	    return s.Filter(func(n int) bool { return n > limit })
//	})
//
//	res, _ := seq.Of(1, 5, 10).Macro("above", 4) // {5, 10}
func RegisterMacro[T any](name string, fn MacroFunc[T]) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]any)
}

// Macro calls the named registered macro on s, forwarding args.
// It returns ErrMacroNotFound for an unknown name and ErrMacroType when the
// macro was registered for another element type.
func (s *Sequence[T]) Macro(name string, args ...any) (*Sequence[T], error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	typed, ok := fn.(MacroFunc[T])
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a %T", ErrMacroType, name, typed)
	}
	return typed(s, args...), nil
}
