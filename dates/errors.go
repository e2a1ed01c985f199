package dates

import "errors"

// Sentinel errors returned by the parsers.
var (
	ErrInvalidTime = errors.New("dates: invalid time")
	ErrInvalidDate = errors.New("dates: invalid date")
	ErrEmptyRange  = errors.New("dates: end is not after start")
)
