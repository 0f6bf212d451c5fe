package client

import (
	"sync"
	"time"

	"github.com/fittrack/fittrack/internal/model"
)

// WorkoutsKey is the cache key for the workout list query.
const WorkoutsKey = "workouts"

// DefaultStaleAfter is how long a cached query result is served before
// the next read goes back to the server.
const DefaultStaleAfter = 5 * time.Minute

type cacheEntry struct {
	workouts  []model.Workout
	fetchedAt time.Time
}

// QueryCache caches query results keyed by query name. Entries older than
// the staleness window are treated as absent. The clock is injected so
// staleness can be tested without sleeping.
type QueryCache struct {
	mu         sync.Mutex
	entries    map[string]cacheEntry
	staleAfter time.Duration
	now        func() time.Time
}

// NewQueryCache creates a QueryCache with the given staleness window.
// A nil now function defaults to time.Now.
func NewQueryCache(staleAfter time.Duration, now func() time.Time) *QueryCache {
	if now == nil {
		now = time.Now
	}
	return &QueryCache{
		entries:    make(map[string]cacheEntry),
		staleAfter: staleAfter,
		now:        now,
	}
}

// Get returns the cached value for key if present and not stale.
func (c *QueryCache) Get(key string) ([]model.Workout, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.staleAfter {
		return nil, false
	}
	return entry.workouts, true
}

// Set stores a value for key, stamping it with the current time.
func (c *QueryCache) Set(key string, workouts []model.Workout) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{workouts: workouts, fetchedAt: c.now()}
}

// Invalidate removes the entry for key so the next Get misses.
func (c *QueryCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}
