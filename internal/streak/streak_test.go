package streak_test

import (
	"testing"
	"time"

	"github.com/limbo/fitstreak/internal/streak"
	"github.com/limbo/fitstreak/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, time.March, 12, 18, 30, 0, 0, time.UTC)

// history builds completions for today minus each given offset
func history(offsets ...int) []entity.WorkoutCompletion {
	result := make([]entity.WorkoutCompletion, 0, len(offsets))
	for _, off := range offsets {
		result = append(result, entity.WorkoutCompletion{
			Date: streak.DayOf(today).AddDate(0, 0, -off),
		})
	}
	return result
}

func TestDayOf(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	lateEvening := time.Date(2025, time.March, 12, 23, 59, 0, 0, loc)
	assert.Equal(t, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), streak.DayOf(lateEvening))
	assert.Equal(t, 1, streak.DaysBetween(lateEvening, lateEvening.Add(time.Minute)))
	assert.Equal(t, -2, streak.DaysBetween(today, today.AddDate(0, 0, -2)))
}

func TestParseDay(t *testing.T) {
	d, err := streak.ParseDay("2025-03-12")
	require.NoError(t, err)
	assert.Equal(t, streak.DayOf(today), d)

	_, err = streak.ParseDay("12.03.2025")
	assert.ErrorIs(t, err, streak.ErrInvalidDay)
	assert.Equal(t, "2025-03-12", streak.FormatDay(today))
}

func TestCurrentStreak(t *testing.T) {
	testCases := []struct {
		Desc     string
		History  []entity.WorkoutCompletion
		Expected int
	}{
		{
			Desc:     "empty history",
			History:  nil,
			Expected: 0,
		},
		{
			Desc:     "three days ending today",
			History:  history(0, 1, 2),
			Expected: 3,
		},
		{
			Desc:     "unsorted input",
			History:  history(2, 0, 1),
			Expected: 3,
		},
		{
			Desc:     "today and three days ago",
			History:  history(0, 3),
			Expected: 1,
		},
		{
			Desc:     "run ending yesterday",
			History:  history(1, 2, 3, 4),
			Expected: 4,
		},
		{
			Desc:     "most recent two days ago",
			History:  history(2, 3, 4),
			Expected: 0,
		},
		{
			Desc:     "duplicate day doesn't break the run",
			History:  history(0, 0, 1),
			Expected: 2,
		},
		{
			Desc:     "only a future completion",
			History:  history(-1),
			Expected: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, streak.CurrentStreak(tc.History, today))
		})
	}
}

func TestLongestStreak(t *testing.T) {
	testCases := []struct {
		Desc     string
		History  []entity.WorkoutCompletion
		Expected int
	}{
		{
			Desc:     "empty history",
			Expected: 0,
		},
		{
			Desc:     "single completion",
			History:  history(40),
			Expected: 1,
		},
		{
			Desc:     "runs of four and six",
			History:  history(30, 29, 28, 27, 20, 19, 18, 17, 16, 15),
			Expected: 6,
		},
		{
			Desc:     "same day logged twice",
			History:  history(5, 5, 4, 4, 3),
			Expected: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, streak.LongestStreak(tc.History))
		})
	}
}

func TestLongestStreakIgnoresToday(t *testing.T) {
	h := history(30, 29, 28, 27, 20, 19, 18, 17, 16, 15)
	assert.Equal(t, 0, streak.CurrentStreak(h, today))
	assert.Equal(t, 6, streak.LongestStreak(h))
}

func TestSummarize(t *testing.T) {
	h := history(0, 1, 5)
	h[0].DurationMinutes = 45
	h[1].DurationMinutes = 30
	stats := streak.Summarize(h, today)
	assert.Equal(t, entity.WorkoutStats{
		TotalWorkouts:          3,
		CurrentStreak:          2,
		LongestStreak:          2,
		AverageWorkoutDuration: 37.5,
	}, stats)
	// same input, same output
	assert.Equal(t, stats, streak.Summarize(h, today))
	assert.Equal(t, entity.WorkoutStats{}, streak.Summarize(nil, today))
}
