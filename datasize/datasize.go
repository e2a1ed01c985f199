// Package datasize formats byte counts and transfer speeds in binary units.
//
//	datasize.Size(1536).String()                         // "1.50 KB"
//	datasize.Size(10 << 20).Per(2 * time.Second).String() // "5.00 MB/s"
package datasize

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Size is an amount of data in bytes.
type Size int64

// Binary units.
const (
	Byte     Size = 1
	Kilobyte      = Byte << 10
	Megabyte      = Kilobyte << 10
	Gigabyte      = Megabyte << 10
)

type unit struct {
	size    Size
	acronym string
}

// units is ordered from the largest unit down.
var units = []unit{
	{Gigabyte, "GB"},
	{Megabyte, "MB"},
	{Kilobyte, "KB"},
	{Byte, "B"},
}

// unitFor picks the largest unit strictly smaller than v, so exactly 1024
// bytes still prints in bytes.
func unitFor(v float64) unit {
	for _, u := range units {
		if v > float64(u.size) {
			return u
		}
	}
	return units[len(units)-1]
}

func format(v float64, suffix string) string {
	u := unitFor(math.Round(v))
	return fmt.Sprintf("%.2f %s%s", v/float64(u.size), u.acronym, suffix)
}

// Parse reads a human-readable size such as "42", "10 MB" or "1.5GiB".
// Both SI and IEC suffixes are accepted.
func Parse(s string) (Size, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidSize, s, err)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%w %q: too large", ErrInvalidSize, s)
	}
	return Size(n), nil
}

// Bytes returns s as a plain byte count.
func (s Size) Bytes() int64 { return int64(s) }

// String formats s as "<value> <unit>" with two decimals.
func (s Size) String() string {
	return format(float64(s), "")
}

// Human formats s the way go-humanize does, e.g. "1.5 KiB".
func (s Size) Human() string {
	if s < 0 {
		return "-" + humanize.IBytes(uint64(-s))
	}
	return humanize.IBytes(uint64(s))
}

func (s Size) Add(other Size) Size { return s + other }
func (s Size) Sub(other Size) Size { return s - other }

// Per returns the speed of transferring s in d.
func (s Size) Per(d time.Duration) Speed {
	return Speed{Amount: s, Duration: d}
}

// Over returns how long transferring s takes at speed. It returns false
// when the speed is undefined or zero.
func (s Size) Over(speed Speed) (time.Duration, bool) {
	bps, ok := speed.BytesPerSecond()
	if !ok || bps == 0 {
		return 0, false
	}
	seconds := float64(s) / bps
	return time.Duration(seconds * float64(time.Second)), true
}

// Speed is an amount of data moved over a duration.
type Speed struct {
	Amount   Size
	Duration time.Duration
}

// BytesPerSecond returns the speed in bytes per second. It returns false
// for a zero duration.
func (sp Speed) BytesPerSecond() (float64, bool) {
	if sp.Duration == 0 {
		return 0, false
	}
	return float64(sp.Amount) / sp.Duration.Seconds(), true
}

// String formats the speed as "<value> <unit>/s", or "N/A" when the
// duration is zero.
func (sp Speed) String() string {
	bps, ok := sp.BytesPerSecond()
	if !ok {
		return "N/A"
	}
	return format(bps, "/s")
}
