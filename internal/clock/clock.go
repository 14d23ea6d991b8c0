package clock

import (
	"fmt"
	"math"
	"time"
)

// DateFormat is the calendar-day key format used throughout the store.
const DateFormat = "2006-01-02"

// ElapsedMinutes returns the minutes between from and to. Clock skew that
// would yield a negative duration clamps to 0.
func ElapsedMinutes(from, to time.Time) float64 {
	mins := to.Sub(from).Minutes()
	if mins < 0 {
		return 0
	}
	return mins
}

// FormatDuration renders a minute count for display: whole seconds below one
// minute, whole minutes otherwise. Rounding is half-up in both branches.
func FormatDuration(minutes float64) string {
	if minutes < 1 {
		return fmt.Sprintf("%d sec", int(math.Floor(minutes*60+0.5)))
	}
	return fmt.Sprintf("%d min", int(math.Floor(minutes+0.5)))
}

// FormatClock renders an instant as a 12-hour clock time, e.g. "9:05 AM".
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// DateOf returns the calendar-day key for an instant in local time.
func DateOf(t time.Time) string {
	return t.Format(DateFormat)
}

// StartOfDay truncates an instant to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}
