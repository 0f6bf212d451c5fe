// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fittrack/fittrack/internal/model"
)

// CreateWorkoutRequest represents the request body for creating a workout.
type CreateWorkoutRequest struct {
	WorkoutType     string `json:"workout_type"`
	DurationMinutes int    `json:"duration_minutes"`
	Calories        int    `json:"calories"`
}

// WorkoutResponse represents a workout in API responses.
type WorkoutResponse struct {
	ID              string    `json:"id"`
	WorkoutType     string    `json:"workout_type"`
	DurationMinutes int       `json:"duration_minutes"`
	Calories        int       `json:"calories"`
	CreatedAt       time.Time `json:"created_at"`
}

// DeletedWorkout echoes the core fields of a deleted workout.
// The creation timestamp is intentionally omitted.
type DeletedWorkout struct {
	ID              string `json:"id"`
	WorkoutType     string `json:"workout_type"`
	DurationMinutes int    `json:"duration_minutes"`
	Calories        int    `json:"calories"`
}

// DeleteWorkoutResponse is the body returned after a successful delete.
type DeleteWorkoutResponse struct {
	Message string         `json:"message"`
	Workout DeletedWorkout `json:"workout"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToWorkoutResponse converts a Workout model to WorkoutResponse DTO.
func ToWorkoutResponse(w *model.Workout) *WorkoutResponse {
	return &WorkoutResponse{
		ID:              w.ID,
		WorkoutType:     w.WorkoutType,
		DurationMinutes: w.DurationMinutes,
		Calories:        w.Calories,
		CreatedAt:       w.CreatedAt,
	}
}

// ToWorkoutListResponse converts a slice of Workout models to response DTOs.
// The result is never nil so an empty list marshals as [] rather than null.
func ToWorkoutListResponse(workouts []model.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = *ToWorkoutResponse(&workouts[i])
	}
	return responses
}

// ToDeleteWorkoutResponse builds the delete confirmation body.
func ToDeleteWorkoutResponse(w *model.Workout) *DeleteWorkoutResponse {
	return &DeleteWorkoutResponse{
		Message: "Workout deleted successfully",
		Workout: DeletedWorkout{
			ID:              w.ID,
			WorkoutType:     w.WorkoutType,
			DurationMinutes: w.DurationMinutes,
			Calories:        w.Calories,
		},
	}
}
