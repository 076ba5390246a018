// Package schedule holds the studio's weekly opening hours and the
// calendar arithmetic for turning a date string into a working window.
// All times are minutes since midnight; dates are YYYY-MM-DD strings.
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// SlotStepMin is the granularity at which bookable start times are offered.
const SlotStepMin = 15

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Window is the open/close range of a working day, in minutes since
// midnight. Open < Close always holds; windows never cross midnight.
type Window struct {
	Open  int
	Close int
}

// Week maps a weekday (Sunday=0 .. Saturday=6) to its working window.
// A nil entry means the studio is closed that day.
type Week [7]*Window

// Default returns the built-in weekly hours: Monday to Friday 09:00-18:00,
// Saturday 09:00-13:00, Sunday closed.
func Default() Week {
	weekday := &Window{Open: 9 * 60, Close: 18 * 60}
	return Week{
		time.Sunday:    nil,
		time.Monday:    weekday,
		time.Tuesday:   weekday,
		time.Wednesday: weekday,
		time.Thursday:  weekday,
		time.Friday:    weekday,
		time.Saturday:  {Open: 9 * 60, Close: 13 * 60},
	}
}

// WindowFor resolves the working window for a calendar date.
// The second return value is false when the studio is closed that day.
// The date must already be valid; malformed input also yields closed.
func (w Week) WindowFor(date string) (Window, bool) {
	wd, err := Weekday(date)
	if err != nil {
		return Window{}, false
	}
	win := w[wd]
	if win == nil {
		return Window{}, false
	}
	return *win, true
}

// Weekday derives the day of week from the date string's integer
// components anchored to UTC. Interpreting the components in local time
// would shift the weekday by one around midnight in non-UTC zones, so the
// date is never run through a timezone-sensitive constructor.
func Weekday(date string) (time.Weekday, error) {
	y, m, d, err := splitDate(date)
	if err != nil {
		return 0, err
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Weekday(), nil
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, _, _, err := splitDate(s)
	return err == nil
}

func splitDate(s string) (year, month, day int, err error) {
	if !dateRe.MatchString(s) {
		return 0, 0, 0, fmt.Errorf("date %q does not match YYYY-MM-DD", s)
	}
	year, _ = strconv.Atoi(s[0:4])
	month, _ = strconv.Atoi(s[5:7])
	day, _ = strconv.Atoi(s[8:10])

	// time.Date normalizes out-of-range components (Feb 30 becomes Mar 2),
	// so round-trip the parts to catch impossible dates.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return 0, 0, 0, fmt.Errorf("date %q is not a real calendar date", s)
	}
	return year, month, day, nil
}

// ParseClock converts an HH:MM 24-hour string to minutes since midnight.
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok || len(h) != 2 || len(m) != 2 {
		return 0, fmt.Errorf("time %q does not match HH:MM", s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("time %q does not match HH:MM", s)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("time %q does not match HH:MM", s)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q is out of range", s)
	}
	return hours*60 + minutes, nil
}

// FormatClock renders minutes since midnight as an HH:MM string.
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
