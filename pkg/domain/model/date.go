package model

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateLayout is the calendar date format used on the wire
const DateLayout = "2006-01-02"

// Date is a calendar date formatted as DateLayout. The zero value means unset.
type Date string

// IsSet reports whether the date holds a value
func (d Date) IsSet() bool {
	return d != ""
}

// String returns the string representation
func (d Date) String() string {
	return string(d)
}

// UnmarshalText normalizes decoded JSON and YAML values to DateLayout. Input that
// is not a calendar date leaves the date unset.
func (d *Date) UnmarshalText(text []byte) error {
	*d, _ = ParseDate(string(text))
	return nil
}

// ParseDate accepts any input that parses to a valid calendar date.
// Invalid or empty input yields an unset Date and false.
func ParseDate(input string) (Date, bool) {
	t, ok := ParseTime(input)
	if !ok {
		return "", false
	}
	return Date(t.Format(DateLayout)), true
}

// ParseTime parses a date or date-time value in any common layout
func ParseTime(input string) (time.Time, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
