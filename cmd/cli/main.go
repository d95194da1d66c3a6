// Package main is the entry point for the shipcost CLI.
package main

import (
	"os"

	"shipcost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
