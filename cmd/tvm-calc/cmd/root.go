// Package cmd implements the tvm-calc command line interface.
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quantfold/tvm/internal/finance"
)

var rootCmd = &cobra.Command{
	Use:   "tvm-calc",
	Short: "Time-value-of-money calculator",
	Long: `tvm-calc evaluates time-value-of-money formulas from the command line.

Examples:
  tvm-calc fv --rate 0.075 --nper 20 --pmt -2000
  tvm-calc pmt --rate 0.00625 --nper 60 --pv 55000
  tvm-calc irr --values=-100,39,59,55,20
  tvm-calc schedule --rate 0.00625 --nper 12 --pv 10000`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// parseWhenFlag converts the --when flag into a payment timing.
func parseWhenFlag(s string) (finance.When, error) {
	return finance.ParseWhen(s)
}

// parseValuesFlag converts a comma-separated cash-flow list into floats.
func parseValuesFlag(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("values must be a comma-separated list of numbers")
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cash flow %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

// printResult prints an evaluation result in full precision.
func printResult(v float64) {
	fmt.Println(strconv.FormatFloat(v, 'g', -1, 64))
}
