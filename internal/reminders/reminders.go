// Package reminders plans workout reminder notifications. Delivery is up to
// the client; this package only decides when reminders are due.
package reminders

import (
	"slices"
	"time"
)

const DefaultHorizon = 7

type Plan struct {
	Enabled  bool
	Days     []time.Weekday
	Hour     int
	Minute   int
	Location *time.Location
	// CompletedToday cancels the reminder for the current day
	CompletedToday bool
	// Horizon is the number of days to plan ahead, DefaultHorizon when zero
	Horizon int
}

// Upcoming returns the reminder instants due after now, in chronological order.
func Upcoming(plan Plan, now time.Time) []time.Time {
	if !plan.Enabled || len(plan.Days) == 0 {
		return []time.Time{}
	}
	loc := plan.Location
	if loc == nil {
		loc = time.UTC
	}
	horizon := plan.Horizon
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	local := now.In(loc)
	y, m, d := local.Date()
	result := make([]time.Time, 0, len(plan.Days))
	for i := range horizon {
		at := time.Date(y, m, d+i, plan.Hour, plan.Minute, 0, 0, loc)
		if !slices.Contains(plan.Days, at.Weekday()) {
			continue
		}
		if i == 0 && plan.CompletedToday {
			continue
		}
		if !at.After(now) {
			continue
		}
		result = append(result, at)
	}
	return result
}
