package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fittrack/fittrack/internal/model"
)

// ErrWorkoutNotFound is returned when no workout matches the given ID.
var ErrWorkoutNotFound = errors.New("workout not found")

// InsertWorkout inserts a new workout row. ID and CreatedAt must already be
// assigned by the caller.
func (r *Repository) InsertWorkout(ctx context.Context, workout *model.Workout) error {
	query := `
		INSERT INTO workouts (id, workout_type, duration_minutes, calories, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		workout.ID,
		workout.WorkoutType,
		workout.DurationMinutes,
		workout.Calories,
		workout.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert workout: %w", err)
	}

	return nil
}

// ListWorkouts returns all workouts, newest first. The secondary ID ordering
// keeps rows with identical timestamps stable.
func (r *Repository) ListWorkouts(ctx context.Context) ([]model.Workout, error) {
	query := `
		SELECT id, workout_type, duration_minutes, calories, created_at
		FROM workouts
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	defer rows.Close()

	workouts := make([]model.Workout, 0)
	for rows.Next() {
		var w model.Workout
		if err := rows.Scan(&w.ID, &w.WorkoutType, &w.DurationMinutes, &w.Calories, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workouts: %w", err)
	}

	return workouts, nil
}

// DeleteWorkout removes a workout by ID and returns the deleted row.
// Returns ErrWorkoutNotFound when no row matched; two racing deletes of the
// same ID resolve here, with the loser observing not-found.
func (r *Repository) DeleteWorkout(ctx context.Context, id string) (*model.Workout, error) {
	query := `
		DELETE FROM workouts
		WHERE id = $1
		RETURNING id, workout_type, duration_minutes, calories, created_at
	`

	var w model.Workout
	err := r.pool.QueryRow(ctx, query, id).Scan(&w.ID, &w.WorkoutType, &w.DurationMinutes, &w.Calories, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("failed to delete workout: %w", err)
	}

	return &w, nil
}
