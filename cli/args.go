package cli

import "fmt"

// Args holds the parsed values of a command's parameters, keyed by
// [Parameter.Key].
type Args struct {
	values map[string]any
}

// NewArgs builds Args from literal values. Intended for tests and for
// calling actions directly.
func NewArgs(values map[string]any) *Args {
	a := &Args{values: make(map[string]any, len(values))}
	for k, v := range values {
		a.values[k] = v
	}
	return a
}

// Lookup returns the value stored under key.
func (a *Args) Lookup(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

// IsSet reports whether key has a value, given or defaulted.
func (a *Args) IsSet(key string) bool {
	_, ok := a.values[key]
	return ok
}

// String returns the value under key formatted as a string, or "".
func (a *Args) String(key string) string {
	v, ok := a.values[key]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Int returns the int under key, or 0.
func (a *Args) Int(key string) int {
	n, _ := a.values[key].(int)
	return n
}

// Bool returns the bool under key, or false.
func (a *Args) Bool(key string) bool {
	b, _ := a.values[key].(bool)
	return b
}

// Strings returns the values of a [Many] parameter.
func (a *Args) Strings(key string) []string {
	switch v := a.values[key].(type) {
	case []string:
		return v
	case string:
		return []string{v}
	default:
		return nil
	}
}
