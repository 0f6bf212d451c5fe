// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/fittrack/fittrack/internal/cache"
	"github.com/fittrack/fittrack/internal/metrics"
	"github.com/fittrack/fittrack/internal/model"
	"github.com/fittrack/fittrack/internal/repository"
)

// Service errors.
var (
	ErrMissingFields   = model.ErrMissingFields
	ErrNotPositive     = model.ErrNotPositive
	ErrWorkoutNotFound = errors.New("workout not found")
)

// WorkoutService handles workout business logic.
type WorkoutService struct {
	repo    *repository.Repository
	cache   *cache.Cache
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewWorkoutService creates a new WorkoutService.
func NewWorkoutService(repo *repository.Repository, cacheClient *cache.Cache, logger *slog.Logger, recorder metrics.Recorder) *WorkoutService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkoutService{
		repo:    repo,
		cache:   cacheClient,
		logger:  logger,
		metrics: recorder,
	}
}

// CreateWorkoutInput defines input for creating a workout.
type CreateWorkoutInput struct {
	WorkoutType     string
	DurationMinutes int
	Calories        int
}

// CreateWorkout validates input, assigns identity and timestamp, and persists
// the workout. The cached list is invalidated so the next read sees the row.
func (s *WorkoutService) CreateWorkout(ctx context.Context, input CreateWorkoutInput) (*model.Workout, error) {
	workout := &model.Workout{
		WorkoutType:     input.WorkoutType,
		DurationMinutes: input.DurationMinutes,
		Calories:        input.Calories,
	}

	if err := workout.Validate(); err != nil {
		return nil, err
	}

	workout.ID = ulid.Make().String()
	workout.CreatedAt = time.Now().UTC()

	if err := s.repo.InsertWorkout(ctx, workout); err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}

	s.metrics.IncWorkoutCreated()
	s.invalidateList(ctx)

	return workout, nil
}

// ListWorkouts returns all workouts newest first, serving from the Redis
// cache when possible and backfilling it on a miss.
func (s *WorkoutService) ListWorkouts(ctx context.Context) ([]model.Workout, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveListDuration(time.Since(start))
	}()

	workouts, err := s.cache.GetWorkoutList(ctx)
	if err == nil {
		s.metrics.IncListCacheHit()
		return workouts, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		// Redis trouble is not fatal - fall through to the store.
		s.logger.Warn("workout list cache read failed", "error", err)
	}
	s.metrics.IncListCacheMiss()

	workouts, err = s.repo.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetWorkoutList(ctx, workouts); err != nil {
		s.logger.Warn("workout list cache backfill failed", "error", err)
	}

	return workouts, nil
}

// DeleteWorkout removes a workout by ID and returns the deleted row.
// Deletion is unconditional; confirmation is a client concern.
func (s *WorkoutService) DeleteWorkout(ctx context.Context, id string) (*model.Workout, error) {
	workout, err := s.repo.DeleteWorkout(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	s.metrics.IncWorkoutDeleted()
	s.invalidateList(ctx)

	return workout, nil
}

// invalidateList drops the cached list after a mutation. Failures are logged
// and swallowed: the TTL bounds how long a stale list can survive.
func (s *WorkoutService) invalidateList(ctx context.Context) {
	if err := s.cache.InvalidateWorkoutList(ctx); err != nil {
		s.logger.Warn("workout list cache invalidation failed", "error", err)
	}
}
