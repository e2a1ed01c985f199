// Package dates parses the short time and date forms typed on the command
// line and generates random times of day.
package dates

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/djachenko/justin-utils/seq"
)

// Clock is a time of day with minute or second precision.
type Clock struct {
	Hour, Minute, Second int
}

// NewClock returns h:m:s, or an error if any part is out of range.
func NewClock(h, m, s int) (Clock, error) {
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 {
		return Clock{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrInvalidTime, h, m, s)
	}
	return Clock{Hour: h, Minute: m, Second: s}, nil
}

// Minutes returns the number of whole minutes since midnight.
func (c Clock) Minutes() int { return c.Hour*60 + c.Minute }

// On returns c as an instant on the day of d, in d's location.
func (c Clock) On(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, c.Hour, c.Minute, c.Second, 0, d.Location())
}

func (c Clock) String() string {
	if c.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	}
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseTime reads "H", "H.M", "H:M" or "H.M.S". Dots and colons are
// interchangeable and every part may be a single digit:
//
//	ParseTime("9.5")    // 09:05
//	ParseTime("18:30")  // 18:30
func ParseTime(s string) (Clock, error) {
	parts := strings.Split(strings.ReplaceAll(strings.TrimSpace(s), ".", ":"), ":")
	if len(parts) > 3 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	var values [3]int
	for i, part := range parts {
		if part == "" || len(part) > 2 {
			return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		values[i] = n
	}
	return NewClock(values[0], values[1], values[2])
}

// ParseDate reads "D.M" or "D.M.Y" relative to today.
//
// A missing year means today's year. A year below 100 is in this century
// unless that would put it after today's year, in which case it is in the
// previous one. Longer years are used as written.
func ParseDate(s string, today time.Time) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		nums[i] = n
	}

	day, month := nums[0], nums[1]
	year := today.Year()
	if len(nums) == 3 {
		year = expandYear(nums[2], today.Year())
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, today.Location())
	if d.Day() != day || int(d.Month()) != month {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

func expandYear(year, current int) int {
	if year >= 100 {
		return year
	}
	if 2000+year <= current {
		return 2000 + year
	}
	return 1900 + year
}

// RandomTimes returns count times of day drawn uniformly at minute
// resolution from [start, end). A nil rng uses the global source.
//
// Every traversal draws fresh times; Cache the sequence to keep one draw.
func RandomTimes(start, end Clock, count int, rng *rand.Rand) (*seq.Sequence[Clock], error) {
	span := end.Minutes() - start.Minutes()
	if span < 1 {
		return nil, fmt.Errorf("%w: %s-%s", ErrEmptyRange, start, end)
	}

	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	return seq.FromSeq(func(yield func(Clock) bool) {
		for range count {
			m := start.Minutes() + intN(span)
			if !yield(Clock{Hour: m / 60, Minute: m % 60}) {
				return
			}
		}
	}), nil
}
