package model

import "math"

// Summary holds aggregate statistics derived from a workout list.
type Summary struct {
	TotalCalories   int `json:"total_calories"`
	WorkoutCount    int `json:"workout_count"`
	AverageCalories int `json:"average_calories"`
}

// Summarize computes totals over a workout list. The average is rounded to
// the nearest integer and zero when the list is empty.
func Summarize(workouts []Workout) Summary {
	s := Summary{WorkoutCount: len(workouts)}
	for _, w := range workouts {
		s.TotalCalories += w.Calories
	}
	if s.WorkoutCount > 0 {
		s.AverageCalories = int(math.Round(float64(s.TotalCalories) / float64(s.WorkoutCount)))
	}
	return s
}
