package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := apiSession().Workouts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load workouts: %w (check the server and run 'fittrack list' again)", err)
		}

		out := cmd.OutOrStdout()
		if len(workouts) == 0 {
			fmt.Fprintln(out, "No workouts recorded yet. Add one with 'fittrack add'.")
			return nil
		}

		fmt.Fprintln(out, "TYPE\tDURATION_MIN\tCALORIES\tDATE\tID")
		for _, w := range workouts {
			fmt.Fprintf(out, "%s\t%d\t%d\t%s\t%s\n",
				w.WorkoutType, w.DurationMinutes, w.Calories, formatDate(w.CreatedAt), w.ID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
