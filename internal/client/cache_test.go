package client

import (
	"testing"
	"time"

	"github.com/fittrack/fittrack/internal/model"
)

func TestQueryCache_GetMissesWhenEmpty(t *testing.T) {
	t.Parallel()

	cache := NewQueryCache(DefaultStaleAfter, nil)

	if _, ok := cache.Get(WorkoutsKey); ok {
		t.Error("expected miss on empty cache")
	}
}

func TestQueryCache_FreshEntryHits(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	cache := NewQueryCache(DefaultStaleAfter, clock)
	cache.Set(WorkoutsKey, []model.Workout{{ID: "a", WorkoutType: "running"}})

	// Just inside the staleness window
	now = now.Add(DefaultStaleAfter - time.Second)

	workouts, ok := cache.Get(WorkoutsKey)
	if !ok {
		t.Fatal("expected hit inside staleness window")
	}
	if len(workouts) != 1 || workouts[0].ID != "a" {
		t.Errorf("unexpected cached value: %+v", workouts)
	}
}

func TestQueryCache_StaleEntryMisses(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	cache := NewQueryCache(DefaultStaleAfter, clock)
	cache.Set(WorkoutsKey, []model.Workout{{ID: "a"}})

	// Exactly at the staleness boundary the entry is stale
	now = now.Add(DefaultStaleAfter)

	if _, ok := cache.Get(WorkoutsKey); ok {
		t.Error("expected miss once entry is stale")
	}
}

func TestQueryCache_SetRefreshesTimestamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	cache := NewQueryCache(DefaultStaleAfter, clock)
	cache.Set(WorkoutsKey, []model.Workout{{ID: "a"}})

	now = now.Add(4 * time.Minute)
	cache.Set(WorkoutsKey, []model.Workout{{ID: "b"}})

	// 4 minutes after the second Set, 8 after the first
	now = now.Add(4 * time.Minute)

	workouts, ok := cache.Get(WorkoutsKey)
	if !ok {
		t.Fatal("expected hit after refresh")
	}
	if workouts[0].ID != "b" {
		t.Errorf("expected refreshed value, got %+v", workouts)
	}
}

func TestQueryCache_Invalidate(t *testing.T) {
	t.Parallel()

	cache := NewQueryCache(DefaultStaleAfter, nil)
	cache.Set(WorkoutsKey, []model.Workout{{ID: "a"}})

	cache.Invalidate(WorkoutsKey)

	if _, ok := cache.Get(WorkoutsKey); ok {
		t.Error("expected miss after invalidation")
	}
}

func TestQueryCache_ZeroStaleAfterAlwaysMisses(t *testing.T) {
	t.Parallel()

	cache := NewQueryCache(0, nil)
	cache.Set(WorkoutsKey, []model.Workout{{ID: "a"}})

	if _, ok := cache.Get(WorkoutsKey); ok {
		t.Error("expected miss with zero staleness window")
	}
}
