package catalog

import (
	"fmt"
	"time"
)

// DateLayout is the fixed-width textual date format used everywhere:
// in the loans file, in operator output, and in date arithmetic.
const DateLayout = "02.01.2006"

// ParseDate parses a DD.MM.YYYY date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as DD.MM.YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the number of calendar days from one date to
// another, both in DD.MM.YYYY form. The result is negative when `to`
// precedes `from`.
func DaysBetween(from, to string) (int, error) {
	t1, err := ParseDate(from)
	if err != nil {
		return 0, err
	}
	t2, err := ParseDate(to)
	if err != nil {
		return 0, err
	}
	return int(t2.Sub(t1).Hours() / 24), nil
}
