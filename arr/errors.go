package arr

import "errors"

// Sentinel errors returned by arr helpers.
var (
	// ErrDuplicateKey is returned by [ConcatMaps] when two maps share a key.
	ErrDuplicateKey = errors.New("arr: key present in more than one map")
)
