package domain

import "time"

// DayOf truncates a timestamp to its calendar day (midnight UTC). All
// day-level comparisons in the engine go through this so that wall-clock
// components never influence materialization or filtering.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// BeforeDay reports whether a falls on an earlier calendar day than b.
func BeforeDay(a, b time.Time) bool {
	return DayOf(a).Before(DayOf(b))
}

// OnOrBeforeDay reports whether a falls on b's day or earlier. This is the
// inclusive-of-today rule: a task due today is relevant today.
func OnOrBeforeDay(a, b time.Time) bool {
	return !DayOf(a).After(DayOf(b))
}

// DaysBetween returns the number of whole calendar days from a to b,
// negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(DayOf(b).Sub(DayOf(a)).Hours() / 24)
}
