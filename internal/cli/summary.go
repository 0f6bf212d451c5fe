package cli

import (
	"fmt"

	"github.com/fittrack/fittrack/internal/model"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show aggregate workout stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Derived from the same cached list the list command uses.
		workouts, err := apiSession().Workouts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load workouts: %w", err)
		}

		s := model.Summarize(workouts)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Workouts: %d\n", s.WorkoutCount)
		fmt.Fprintf(out, "Total calories: %d\n", s.TotalCalories)
		fmt.Fprintf(out, "Average calories: %d\n", s.AverageCalories)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
