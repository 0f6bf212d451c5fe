// Package main is the entrypoint for the fittrack CLI.
package main

import "github.com/fittrack/fittrack/internal/cli"

func main() {
	cli.Execute()
}
