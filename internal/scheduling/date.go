package scheduling

import "time"

// CalendarDay truncates t to day granularity in UTC. All grouping and
// equality checks in this package compare calendar days, never raw
// timestamps.
func CalendarDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameCalendarDay reports whether a and b fall on the same UTC calendar day.
func SameCalendarDay(a, b time.Time) bool {
	return CalendarDay(a).Equal(CalendarDay(b))
}
