package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quantfold/tvm/internal/finance"
)

var (
	rateNper    float64
	ratePmt     float64
	ratePv      float64
	rateFv      float64
	rateWhen    string
	rateGuess   float64
	rateTol     float64
	rateMaxIter int
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Periodic interest rate",
	Long: `Solves iteratively for the interest rate per period that balances
the annuity equation. May fail to converge for some inputs.

Examples:
  tvm-calc rate --nper 10 --pmt 0 --pv -3500 --fv 10000
  tvm-calc rate --nper 10 --pmt -100 --pv 1000 --guess 0.05`,
	RunE: runRate,
}

func init() {
	rootCmd.AddCommand(rateCmd)
	rateCmd.Flags().Float64Var(&rateNper, "nper", 0, "number of periods")
	rateCmd.Flags().Float64Var(&ratePmt, "pmt", 0, "payment per period")
	rateCmd.Flags().Float64Var(&ratePv, "pv", 0, "present value")
	rateCmd.Flags().Float64Var(&rateFv, "fv", 0, "future value")
	rateCmd.Flags().StringVar(&rateWhen, "when", "end", "payment timing: end or begin")
	rateCmd.Flags().Float64Var(&rateGuess, "guess", 0.1, "starting guess for the solver")
	rateCmd.Flags().Float64Var(&rateTol, "tol", 1e-6, "convergence tolerance")
	rateCmd.Flags().IntVar(&rateMaxIter, "maxiter", 100, "maximum solver iterations")
}

func runRate(cmd *cobra.Command, args []string) error {
	when, err := parseWhenFlag(rateWhen)
	if err != nil {
		return err
	}
	value, err := finance.NewRate(rateNper, ratePmt, ratePv, rateFv, when, rateGuess, rateTol, rateMaxIter).Get()
	if err != nil {
		return err
	}
	printResult(value)
	return nil
}
