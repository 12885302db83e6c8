package cache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/coocood/freecache"
	"github.com/google/uuid"
	"github.com/limbo/fitstreak/pkg/entity"
)

const (
	megabyte = 1024 * 1024
	// freecache refuses anything smaller
	minSizeMB = 1

	DefaultTTL = 10 * time.Minute
)

// StatsCache keeps computed statistics per user. Every entry remembers the
// day it was computed for, since the current streak depends on it.
//
// Each user also has a generation bumped by Invalidate. Writers take the
// generation before reading the history and Set drops the entry when it
// changed in between.
type StatsCache struct {
	mu    sync.Mutex
	cache *freecache.Cache
	ttl   int
	// last issued generation, never reused
	seq uint64
}

type statsEntry struct {
	Day   string              `json:"day"`
	Stats entity.WorkoutStats `json:"stats"`
}

func NewStatsCache(sizeMB int, ttl time.Duration) *StatsCache {
	if sizeMB < minSizeMB {
		sizeMB = minSizeMB
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &StatsCache{
		cache: freecache.NewCache(sizeMB * megabyte),
		ttl:   int(ttl.Seconds()),
	}
}

// Get returns cached stats of uid computed on day. ok is false on a miss.
func (c *StatsCache) Get(uid uuid.UUID, day time.Time) (entity.WorkoutStats, bool) {
	raw, err := c.cache.Get(key(uid))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			slog.Error("reading stats cache error", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		}
		return entity.WorkoutStats{}, false
	}
	var entry statsEntry
	if err = sonic.Unmarshal(raw, &entry); err != nil {
		slog.Error("decoding cached stats error", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		c.cache.Del(key(uid))
		return entity.WorkoutStats{}, false
	}
	if entry.Day != day.Format(time.DateOnly) {
		return entity.WorkoutStats{}, false
	}
	return entry.Stats, true
}

// Generation returns the current generation of uid's stats, issuing one if there is none
func (c *StatsCache) Generation(uid uuid.UUID) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen, ok := c.generation(uid); ok {
		return gen
	}
	return c.bump(uid)
}

// Set stores stats computed under gen. Nothing is stored and false is returned
// when uid was invalidated after gen had been taken.
func (c *StatsCache) Set(uid uuid.UUID, day time.Time, gen uint64, stats entity.WorkoutStats) bool {
	raw, err := sonic.Marshal(statsEntry{
		Day:   day.Format(time.DateOnly),
		Stats: stats,
	})
	if err != nil {
		slog.Error("encoding stats for cache error", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if current, ok := c.generation(uid); !ok || current != gen {
		return false
	}
	if err = c.cache.Set(key(uid), raw, c.ttl); err != nil {
		slog.Error("writing stats cache error", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (c *StatsCache) Invalidate(uid uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bump(uid)
	c.cache.Del(key(uid))
}

// generation and bump expect c.mu held
func (c *StatsCache) generation(uid uuid.UUID) (uint64, bool) {
	raw, err := c.cache.Get(genKey(uid))
	if err != nil || len(raw) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(raw), true
}

func (c *StatsCache) bump(uid uuid.UUID) uint64 {
	c.seq++
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, c.seq)
	if err := c.cache.Set(genKey(uid), raw, 0); err != nil {
		slog.Error("writing stats generation error", slog.String("uid", uid.String()), slog.String("error", err.Error()))
	}
	return c.seq
}

func key(uid uuid.UUID) []byte {
	return []byte(fmt.Sprintf("stats::%s", uid))
}

func genKey(uid uuid.UUID) []byte {
	return []byte(fmt.Sprintf("stats-gen::%s", uid))
}
