// Package cmd - modes command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shipcost/core/pricing"
)

// modesCmd lists the registered shipping modes
var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List registered shipping modes and rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, mode := range pricing.Modes() {
			strategy, err := pricing.Resolve(mode)
			if err != nil {
				return err
			}
			fmt.Printf("%-10s %s/kg\n", mode, strategy.RatePerKg().String())
		}
		return nil
	},
}
