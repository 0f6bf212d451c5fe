package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	addType     string
	addDuration int
	addCalories int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateAddInput(); err != nil {
			return err
		}

		workout, err := apiSession().CreateWorkout(cmd.Context(), strings.TrimSpace(addType), addDuration, addCalories)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %d min, %d calories (id %s)\n",
			workout.WorkoutType, workout.DurationMinutes, workout.Calories, workout.ID)
		return nil
	},
}

// validateAddInput mirrors the server's validation so obviously bad
// input never leaves the client. Per-field messages are collected so
// the user sees every problem at once.
func validateAddInput() error {
	var problems []string
	if strings.TrimSpace(addType) == "" {
		problems = append(problems, "workout type is required")
	}
	if addDuration <= 0 {
		problems = append(problems, "duration must be a positive number")
	}
	if addCalories <= 0 {
		problems = append(problems, "calories must be a positive number")
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addType, "type", "", "Workout type (running, cycling, yoga, etc.)")
	addCmd.Flags().IntVar(&addDuration, "duration", 0, "Duration in minutes")
	addCmd.Flags().IntVar(&addCalories, "calories", 0, "Calories burned")
	_ = addCmd.MarkFlagRequired("type")
	_ = addCmd.MarkFlagRequired("duration")
	_ = addCmd.MarkFlagRequired("calories")
}
