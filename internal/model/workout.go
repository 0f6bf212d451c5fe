// Package model defines domain entities for the application.
package model

import (
	"errors"
	"strings"
	"time"
)

// Validation errors for workout fields.
var (
	ErrMissingFields = errors.New("missing required fields: workout_type, duration_minutes, calories")
	ErrNotPositive   = errors.New("duration and calories must be positive numbers")
)

// Workout represents a single logged exercise session.
type Workout struct {
	ID              string    `json:"id"`
	WorkoutType     string    `json:"workout_type"`
	DurationMinutes int       `json:"duration_minutes"`
	Calories        int       `json:"calories"`
	CreatedAt       time.Time `json:"created_at"`
}

// Validate checks the mutable workout fields against the creation rules.
// Presence is checked first (zero values count as missing), then positivity,
// mirroring the order the API reports violations in.
func (w *Workout) Validate() error {
	if strings.TrimSpace(w.WorkoutType) == "" || w.DurationMinutes == 0 || w.Calories == 0 {
		return ErrMissingFields
	}
	if w.DurationMinutes < 0 || w.Calories < 0 {
		return ErrNotPositive
	}
	return nil
}
