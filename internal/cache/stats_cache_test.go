package cache_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fitstreak/internal/cache"
	"github.com/limbo/fitstreak/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCache(t *testing.T) {
	c := cache.NewStatsCache(1, time.Minute)
	uid := uuid.New()
	day := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	stats := entity.WorkoutStats{
		TotalWorkouts:          12,
		CurrentStreak:          3,
		LongestStreak:          5,
		AverageWorkoutDuration: 42.5,
	}

	_, ok := c.Get(uid, day)
	assert.False(t, ok)

	require.True(t, c.Set(uid, day, c.Generation(uid), stats))
	cached, ok := c.Get(uid, day)
	require.True(t, ok)
	assert.Equal(t, stats, cached)

	t.Run("stale day", func(t *testing.T) {
		_, ok := c.Get(uid, day.AddDate(0, 0, 1))
		assert.False(t, ok)
	})
	t.Run("other user", func(t *testing.T) {
		_, ok := c.Get(uuid.New(), day)
		assert.False(t, ok)
	})
	t.Run("invalidated", func(t *testing.T) {
		c.Invalidate(uid)
		_, ok := c.Get(uid, day)
		assert.False(t, ok)
	})
}

func TestStatsCacheGeneration(t *testing.T) {
	c := cache.NewStatsCache(1, time.Minute)
	uid := uuid.New()
	day := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	before := entity.WorkoutStats{TotalWorkouts: 1, CurrentStreak: 1, LongestStreak: 1}

	gen := c.Generation(uid)
	assert.Equal(t, gen, c.Generation(uid))

	// a workout was completed while stats were being computed
	c.Invalidate(uid)
	assert.False(t, c.Set(uid, day, gen, before))
	_, ok := c.Get(uid, day)
	assert.False(t, ok)

	fresh := c.Generation(uid)
	assert.NotEqual(t, gen, fresh)
	assert.True(t, c.Set(uid, day, fresh, before))
	_, ok = c.Get(uid, day)
	assert.True(t, ok)

	t.Run("generations are per user", func(t *testing.T) {
		other := uuid.New()
		otherGen := c.Generation(other)
		c.Invalidate(uid)
		assert.True(t, c.Set(other, day, otherGen, before))
	})
	t.Run("never issued generation", func(t *testing.T) {
		assert.False(t, c.Set(uuid.New(), day, 42, before))
	})
}
