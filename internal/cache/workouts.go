package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fittrack/fittrack/internal/model"
)

const (
	// workoutListKey is the fixed cache key for the workout collection.
	// The whole list is cached as one value since every read is "all rows".
	workoutListKey = "workouts"

	// WorkoutListTTL bounds staleness if an invalidation is ever missed.
	WorkoutListTTL = 5 * time.Minute
)

// ErrCacheMiss indicates the requested entry is not cached.
var ErrCacheMiss = errors.New("cache miss")

// GetWorkoutList retrieves the cached workout list.
// Returns ErrCacheMiss if not present.
func (c *Cache) GetWorkoutList(ctx context.Context) ([]model.Workout, error) {
	data, err := c.client.Get(ctx, workoutListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var workouts []model.Workout
	if err := json.Unmarshal(data, &workouts); err != nil {
		// Treat a corrupt entry as a miss; the next set overwrites it.
		return nil, ErrCacheMiss
	}

	return workouts, nil
}

// SetWorkoutList stores the workout list with a bounded TTL.
func (c *Cache) SetWorkoutList(ctx context.Context, workouts []model.Workout) error {
	data, err := json.Marshal(workouts)
	if err != nil {
		return fmt.Errorf("failed to marshal workout list: %w", err)
	}

	if err := c.client.Set(ctx, workoutListKey, data, WorkoutListTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache workout list: %w", err)
	}

	return nil
}

// InvalidateWorkoutList drops the cached list so the next read hits the store.
func (c *Cache) InvalidateWorkoutList(ctx context.Context) error {
	if err := c.client.Del(ctx, workoutListKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate workout list: %w", err)
	}
	return nil
}
