package timewindow

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidTimeFormat is returned when a time string is not H:mm:ss or HH:mm:ss
var ErrInvalidTimeFormat = errors.New("invalid time format, expected H:mm:ss or HH:mm:ss")

// Accepts a one- or two-digit hour, e.g. "9:00:00" and "09:00:00"
var timePattern = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d):([0-5]\d)$`)

// Default configuration values used when no row exists or a stored
// string fails to parse
const (
	DefaultOrderDeadline = "09:00:00"
	DefaultMealStartTime = "11:30:00"
)

// TimeOfDay is a wall-clock time without a date or timezone component.
// Immutable once parsed.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses "H:mm:ss" or "HH:mm:ss". Both forms of the same
// time yield an identical TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second, _ := strconv.Atoi(m[3])
	return TimeOfDay{Hour: hour, Minute: minute, Second: second}, nil
}

// MustParseTimeOfDay is ParseTimeOfDay for known-good literals
func MustParseTimeOfDay(s string) TimeOfDay {
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return tod
}

// String renders the normalized two-digit form (HH:mm:ss)
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Combine pairs a calendar date with a time-of-day in the date's location
func Combine(date time.Time, tod TimeOfDay) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour, tod.Minute, tod.Second, 0, date.Location())
}

// CombineString parses timeStr and combines it with date. Fails with
// ErrInvalidTimeFormat on a malformed string.
func CombineString(date time.Time, timeStr string) (time.Time, error) {
	tod, err := ParseTimeOfDay(timeStr)
	if err != nil {
		return time.Time{}, err
	}
	return Combine(date, tod), nil
}
