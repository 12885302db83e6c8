package streak

import (
	"math"
	"slices"
	"time"

	"github.com/limbo/fitstreak/pkg/entity"
)

// distinctDays returns the calendar days of history, deduplicated and sorted ascending
func distinctDays(history []entity.WorkoutCompletion) []time.Time {
	days := make([]time.Time, 0, len(history))
	for _, w := range history {
		days = append(days, DayOf(w.Date))
	}
	slices.SortStableFunc(days, func(a, b time.Time) int {
		return a.Compare(b)
	})
	return slices.CompactFunc(days, func(a, b time.Time) bool {
		return a.Equal(b)
	})
}

// CurrentStreak counts consecutive days with a completion ending today, or
// ending yesterday when nothing was logged today yet.
func CurrentStreak(history []entity.WorkoutCompletion, today time.Time) int {
	days := distinctDays(history)
	if len(days) == 0 {
		return 0
	}
	slices.Reverse(days)

	today = DayOf(today)
	mostRecent := days[0]
	if DaysBetween(mostRecent, today) > 1 {
		return 0
	}

	expected := today
	if !mostRecent.Equal(today) {
		expected = today.Add(-day)
	}
	streak := 0
	for _, d := range days {
		if !d.Equal(expected) {
			break
		}
		streak++
		expected = expected.Add(-day)
	}
	return streak
}

// LongestStreak is the longest run of consecutive days in the whole history.
func LongestStreak(history []entity.WorkoutCompletion) int {
	days := distinctDays(history)
	if len(days) == 0 {
		return 0
	}
	longest, current := 1, 1
	for i := 1; i < len(days); i++ {
		if DaysBetween(days[i-1], days[i]) == 1 {
			current++
		} else {
			current = 1
		}
		longest = max(longest, current)
	}
	return longest
}

// AverageDuration is the mean duration in minutes over completions that
// recorded one, rounded to two decimals.
func AverageDuration(history []entity.WorkoutCompletion) float64 {
	total, count := 0, 0
	for _, w := range history {
		if w.DurationMinutes <= 0 {
			continue
		}
		total += w.DurationMinutes
		count++
	}
	if count == 0 {
		return 0
	}
	return math.Round(float64(total)/float64(count)*100) / 100
}

func Summarize(history []entity.WorkoutCompletion, today time.Time) entity.WorkoutStats {
	return entity.WorkoutStats{
		TotalWorkouts:          len(distinctDays(history)),
		CurrentStreak:          CurrentStreak(history, today),
		LongestStreak:          LongestStreak(history),
		AverageWorkoutDuration: AverageDuration(history),
	}
}
