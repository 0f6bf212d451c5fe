// Package cli implements the fittrack terminal frontend.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "fittrack logs workouts from your terminal",
	Long:  "fittrack is a workout tracking CLI backed by the fittrack API: log workouts, list them, and see aggregate stats.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the workout API")
}
