package client

import (
	"context"

	"github.com/fittrack/fittrack/internal/model"
)

// Session combines the API client with a query cache. Reads are served
// from cache while fresh; successful mutations invalidate the cached
// list so the next read refetches.
type Session struct {
	client *Client
	cache  *QueryCache
}

// NewSession creates a Session. A nil cache gets a default one.
func NewSession(c *Client, cache *QueryCache) *Session {
	if cache == nil {
		cache = NewQueryCache(DefaultStaleAfter, nil)
	}
	return &Session{client: c, cache: cache}
}

// Workouts returns the workout list, from cache when fresh.
func (s *Session) Workouts(ctx context.Context) ([]model.Workout, error) {
	if workouts, ok := s.cache.Get(WorkoutsKey); ok {
		return workouts, nil
	}

	workouts, err := s.client.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(WorkoutsKey, workouts)
	return workouts, nil
}

// CreateWorkout records a workout and invalidates the cached list on success.
// A failed create leaves the cache untouched.
func (s *Session) CreateWorkout(ctx context.Context, workoutType string, durationMinutes, calories int) (*model.Workout, error) {
	workout, err := s.client.Create(ctx, workoutType, durationMinutes, calories)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(WorkoutsKey)
	return workout, nil
}

// DeleteWorkout removes a workout and invalidates the cached list on success.
// A failed delete leaves the cache untouched.
func (s *Session) DeleteWorkout(ctx context.Context, id string) (*DeleteResult, error) {
	result, err := s.client.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(WorkoutsKey)
	return result, nil
}
