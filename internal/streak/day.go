// Package streak derives workout statistics from a completion history and
// validates weekly schedules. Every function here is pure: no I/O, no clock
// reads, no shared state.
package streak

import (
	"errors"
	"time"
)

const (
	DayLayout = "2006-01-02"
	day       = 24 * time.Hour
)

var ErrInvalidDay = errors.New("day must be in YYYY-MM-DD format")

// DayOf truncates t to its calendar day in t's own location. The result is
// always midnight UTC so days from different zones compare with ==.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DayOf(b).Sub(DayOf(a)) / day)
}

func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, errors.Join(ErrInvalidDay, err)
	}
	return t, nil
}

func FormatDay(t time.Time) string {
	return DayOf(t).Format(DayLayout)
}
