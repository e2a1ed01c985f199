package datasize

import "errors"

// ErrInvalidSize is returned by [Parse] for text that is not a size.
var ErrInvalidSize = errors.New("datasize: invalid size")
