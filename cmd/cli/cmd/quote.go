// Package cmd - quote command
package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shipcost/core/calculator"
	"shipcost/core/output"
	"shipcost/core/pricing"
	"shipcost/core/types"
	"shipcost/internal/config"
	"shipcost/internal/errors"
	"shipcost/internal/logging"
)

var (
	quoteMode    string
	quoteWeights []string
	outputFormat string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote shipping cost for package weights",
	Long: `Price package weights under a shipping mode.

Weights are in kilograms and must be non-negative. The mode is resolved
against the registered pricing strategies; unknown modes are rejected.

Examples:
  shipcost quote --mode Ground --weight 10
  shipcost quote --mode Air --weight 10 --weight 2.5
  shipcost quote --mode Ground --weight 10 --format json`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteMode, "mode", "m", string(types.ModeGround), "shipping mode")
	quoteCmd.Flags().StringArrayVarP(&quoteWeights, "weight", "w", nil, "package weight in kg (repeatable)")
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	_ = quoteCmd.MarkFlagRequired("weight")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	weights, err := parseWeights(quoteWeights)
	if err != nil {
		return err
	}

	// Resolve the mode through the factory; InvalidMode propagates as-is
	strategy, err := pricing.Resolve(types.Mode(quoteMode))
	if err != nil {
		return err
	}

	logging.Debug("resolved pricing strategy",
		zap.String("mode", string(strategy.Mode())),
		zap.String("rate_per_kg", strategy.RatePerKg().String()))

	calc, err := calculator.NewWithCurrency(strategy, cfg.Output.Currency)
	if err != nil {
		return err
	}

	quote := calc.Quote(weights...)

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, ok := output.Get(format)
	if !ok {
		return errors.Newf(errors.TypeInput, "unknown output format: %s", format)
	}

	return formatter.Render(os.Stdout, quote)
}

// parseWeights validates and converts weight flags.
// The pricing core assumes non-negative weights, so the CLI enforces it.
func parseWeights(raw []string) ([]decimal.Decimal, error) {
	weights := make([]decimal.Decimal, 0, len(raw))
	for _, r := range raw {
		w, err := decimal.NewFromString(r)
		if err != nil {
			return nil, errors.Input(fmt.Sprintf("invalid weight: %q", r))
		}
		if w.IsNegative() {
			return nil, errors.Input(fmt.Sprintf("weight must be non-negative: %s", r))
		}
		weights = append(weights, w)
	}
	return weights, nil
}
