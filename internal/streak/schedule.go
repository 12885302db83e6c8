package streak

import (
	"errors"
	"slices"
	"strings"
	"time"

	errorvalues "github.com/limbo/fitstreak/internal/error_values"
)

const MaxWorkoutDays = 4

const (
	ReasonTooManyDays     = "maximum workout days exceeded"
	ReasonRestDayRequired = "rest day required between workouts"
)

type Verdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Err maps a rejected verdict to its sentinel error, nil when valid.
func (v Verdict) Err() error {
	switch {
	case v.Valid:
		return nil
	case v.Reason == ReasonTooManyDays:
		return errorvalues.ErrTooManyWorkoutDays
	case v.Reason == ReasonRestDayRequired:
		return errorvalues.ErrRestDayRequired
	}
	return errors.New(v.Reason)
}

// ValidateToggle checks whether adding or removing candidate keeps the
// selection schedulable. The week is not circular: Saturday and Sunday are
// not treated as neighbours.
func ValidateToggle(current []time.Weekday, candidate time.Weekday, adding bool) Verdict {
	if !adding {
		return Verdict{Valid: true}
	}
	result := ApplyToggle(current, candidate, true)
	if len(result) > MaxWorkoutDays {
		return Verdict{Reason: ReasonTooManyDays}
	}
	for i := 1; i < len(result); i++ {
		if result[i]-result[i-1] == 1 {
			return Verdict{Reason: ReasonRestDayRequired}
		}
	}
	return Verdict{Valid: true}
}

// ApplyToggle returns a new sorted, deduplicated selection with candidate added or removed.
func ApplyToggle(current []time.Weekday, candidate time.Weekday, adding bool) []time.Weekday {
	result := make([]time.Weekday, 0, len(current)+1)
	for _, d := range current {
		if !adding && d == candidate {
			continue
		}
		result = append(result, d)
	}
	if adding {
		result = append(result, candidate)
	}
	slices.Sort(result)
	return slices.Compact(result)
}

func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, errorvalues.ErrInvalidWeekday
}
